package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
)

// Config holds all command-line configuration
type Config struct {
	PrivateKeyPath string
	PublicKeyPath  string
	Bits           int
}

func main() {
	cfg := parseFlags()

	if err := generateKeys(cfg); err != nil {
		log.Fatalf("failed to generate keys: %v\n", err)
	}

	log.Printf("wrote %s and %s\n", cfg.PrivateKeyPath, cfg.PublicKeyPath)
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.PrivateKeyPath, "private", "legacy.pem", "Private key output path")
	flag.StringVar(&cfg.PublicKeyPath, "public", "legacy.pub.pem", "Public key output path")
	flag.IntVar(&cfg.Bits, "bits", 2048, "RSA key size in bits")
	flag.Parse()
	return cfg
}

func generateKeys(cfg Config) error {
	// Generate RSA keypair
	key, err := rsa.GenerateKey(rand.Reader, cfg.Bits)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	// Write signing key
	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	if err := os.WriteFile(cfg.PrivateKeyPath, privatePEM, 0600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}

	// Write verification key
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return fmt.Errorf("marshal public key: %w", err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicDER,
	})
	if err := os.WriteFile(cfg.PublicKeyPath, publicPEM, 0644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}

	return nil
}
