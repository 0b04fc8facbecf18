package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yzr95924/sgx-ra-sample/cmd/flags"
	"github.com/yzr95924/sgx-ra-sample/enclavekey"
)

var keyFileFlag = &cli.StringFlag{
	Name:     "key-file",
	Required: true,
	Usage:    "path to a PEM-encoded P-256 private key",
}

var pubkeyFlag = &cli.StringFlag{
	Name:     "pubkey",
	Required: true,
	Usage:    "enclave-format public key: 128 hex chars, gx then gy, little-endian",
}

func main() {
	app := &cli.App{
		Name:  "rakeytool",
		Usage: "Manage service-provider keys for the remote-attestation key exchange",
		Flags: flags.CommonFlags,
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "generate a new P-256 private key and write it as PEM",
				Flags:  []cli.Flag{keyFileFlag},
				Action: runGenerate,
			},
			{
				Name:   "inspect",
				Usage:  "validate an enclave-format public key and print its coordinates",
				Flags:  []cli.Flag{pubkeyFlag},
				Action: runInspect,
			},
			{
				Name:   "convert",
				Usage:  "print the public part of a PEM key in the enclave format",
				Flags:  []cli.Flag{keyFileFlag},
				Action: runConvert,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runGenerate(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	keyFile := cCtx.String(keyFileFlag.Name)

	key, err := enclavekey.GeneratePrivateKey()
	if err != nil {
		logger.Error("Failed to generate key", "err", err)
		return err
	}

	if err := enclavekey.SavePrivateKey(keyFile, key); err != nil {
		enclavekey.FprintError(os.Stderr, "rakeytool", err)
		return err
	}

	ecdhPub, err := key.PublicKey.ECDH()
	if err != nil {
		logger.Error("Failed to convert public key", "err", err)
		return err
	}
	raw, err := enclavekey.EnclaveFromPublicKey(ecdhPub)
	if err != nil {
		logger.Error("Failed to encode public key", "err", err)
		return err
	}

	logger.Info("Key generated", "file", keyFile)
	fmt.Println(raw.Hex())
	return nil
}

func runInspect(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)

	raw, err := enclavekey.NewEC256PublicKeyFromHex(cCtx.String(pubkeyFlag.Name))
	if err != nil {
		enclavekey.FprintError(os.Stderr, "rakeytool", err)
		return err
	}

	pub, err := enclavekey.PublicKeyFromEnclave(raw)
	if err != nil {
		enclavekey.FprintError(os.Stderr, "rakeytool", err)
		return err
	}

	// Uncompressed SEC 1 point: 0x04 || X || Y, big-endian.
	point := pub.Bytes()
	logger.Info("Valid P-256 public key")
	fmt.Printf("x = %s\n", hex.EncodeToString(point[1:33]))
	fmt.Printf("y = %s\n", hex.EncodeToString(point[33:]))
	return nil
}

func runConvert(cCtx *cli.Context) error {
	keyFile := cCtx.String(keyFileFlag.Name)

	key, err := enclavekey.LoadPrivateKey(keyFile)
	if err != nil {
		enclavekey.FprintError(os.Stderr, "rakeytool", err)
		return err
	}

	raw, err := enclavekey.EnclaveFromPublicKey(key.PublicKey())
	if err != nil {
		enclavekey.FprintError(os.Stderr, "rakeytool", err)
		return err
	}

	fmt.Println(raw.Hex())
	return nil
}
