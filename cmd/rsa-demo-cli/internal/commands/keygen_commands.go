package commands

import (
	"fmt"
	"math/big"

	rsaDomain "rsa_demo_service/internal/domain/rsa"
	"rsa_demo_service/internal/infrastructure/cryptography"
	"rsa_demo_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// KeygenCommandHandler encapsulates logic for generating RSA key pairs via CLI.
type KeygenCommandHandler struct {
	rsaProcessor rsaDomain.Processor
	logger       logger.Logger
}

// NewKeygenCommandHandler initializes a new KeygenCommandHandler with logging and an RSA processor.
func NewKeygenCommandHandler() (*KeygenCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &KeygenCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair from explicit primes or random
// primes of a requested bit length. The pair is printed, never stored.
func (commandHandler *KeygenCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	pFlag, err := cmd.Flags().GetString("p")
	if err != nil {
		commandHandler.logger.Error("invalid p flag: ", err)
		return
	}
	qFlag, err := cmd.Flags().GetString("q")
	if err != nil {
		commandHandler.logger.Error("invalid q flag: ", err)
		return
	}
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		commandHandler.logger.Error("invalid bits flag: ", err)
		return
	}
	exponent, err := cmd.Flags().GetInt64("exponent")
	if err != nil {
		commandHandler.logger.Error("invalid exponent flag: ", err)
		return
	}

	var keyPair *rsaDomain.KeyPair
	if pFlag != "" || qFlag != "" {
		p, ok := new(big.Int).SetString(pFlag, 10)
		if !ok {
			commandHandler.logger.Error("p is not a valid decimal integer")
			return
		}
		q, ok := new(big.Int).SetString(qFlag, 10)
		if !ok {
			commandHandler.logger.Error("q is not a valid decimal integer")
			return
		}
		keyPair, err = commandHandler.rsaProcessor.GenerateKeyPair(p, q)
	} else {
		keyPair, err = commandHandler.rsaProcessor.GenerateRandomKeyPair(bits, exponent)
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("n = %s\ne = %s\nd = %s\n", keyPair.N, keyPair.E, keyPair.D)
}

// InitKeygenCommands registers the key generation command
func InitKeygenCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeygenCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create keygen command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().StringP("p", "", "", "First prime (decimal); requires --q")
	generateKeysCmd.Flags().StringP("q", "", "", "Second prime (decimal); requires --p")
	generateKeysCmd.Flags().IntP("bits", "", 2048, "Modulus size for random key generation")
	generateKeysCmd.Flags().Int64P("exponent", "", 65537, "Public exponent for random key generation")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
