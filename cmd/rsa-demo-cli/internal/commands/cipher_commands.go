package commands

import (
	"fmt"
	"math/big"
	"strings"

	rsaDomain "rsa_demo_service/internal/domain/rsa"
	"rsa_demo_service/internal/infrastructure/cryptography"
	"rsa_demo_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CipherCommandHandler encapsulates logic for RSA encryption and decryption via CLI.
type CipherCommandHandler struct {
	rsaProcessor rsaDomain.Processor
	logger       logger.Logger
}

// NewCipherCommandHandler initializes a new CipherCommandHandler with logging and an RSA processor.
func NewCipherCommandHandler() (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &CipherCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// EncryptCmd encrypts a message with a public key given as decimal flags
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	publicKey, ok := commandHandler.readPublicKey(cmd)
	if !ok {
		return
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag: ", err)
		return
	}
	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		commandHandler.logger.Error("invalid mode flag: ", err)
		return
	}

	switch mode {
	case "runes":
		ciphertext, err := commandHandler.rsaProcessor.Encrypt(message, publicKey)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
		values := make([]string, len(ciphertext))
		for i, c := range ciphertext {
			values[i] = c.String()
		}
		fmt.Println(strings.Join(values, ","))
	case "text":
		cipherB64, err := commandHandler.rsaProcessor.EncryptText(message, publicKey)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
		fmt.Println(cipherB64)
	default:
		commandHandler.logger.Error("unsupported mode: ", mode)
	}
}

// DecryptCmd decrypts a ciphertext with a private key given as decimal flags
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	privateKey, ok := commandHandler.readPrivateKey(cmd)
	if !ok {
		return
	}
	cipher, err := cmd.Flags().GetString("cipher")
	if err != nil {
		commandHandler.logger.Error("invalid cipher flag: ", err)
		return
	}
	cipherB64, err := cmd.Flags().GetString("cipher-b64")
	if err != nil {
		commandHandler.logger.Error("invalid cipher-b64 flag: ", err)
		return
	}

	var plaintext string
	switch {
	case cipher != "":
		var values []*big.Int
		for _, part := range strings.Split(cipher, ",") {
			value, ok := new(big.Int).SetString(strings.TrimSpace(part), 10)
			if !ok {
				commandHandler.logger.Error("cipher value is not a valid decimal integer: ", part)
				return
			}
			values = append(values, value)
		}
		plaintext, err = commandHandler.rsaProcessor.Decrypt(values, privateKey)
	case cipherB64 != "":
		plaintext, err = commandHandler.rsaProcessor.DecryptText(cipherB64, privateKey)
	default:
		commandHandler.logger.Error("either --cipher or --cipher-b64 is required")
		return
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Println(plaintext)
}

func (commandHandler *CipherCommandHandler) readPublicKey(cmd *cobra.Command) (*rsaDomain.PublicKey, bool) {
	nFlag, err := cmd.Flags().GetString("n")
	if err != nil {
		commandHandler.logger.Error("invalid n flag: ", err)
		return nil, false
	}
	eFlag, err := cmd.Flags().GetString("e")
	if err != nil {
		commandHandler.logger.Error("invalid e flag: ", err)
		return nil, false
	}

	n, ok := new(big.Int).SetString(nFlag, 10)
	if !ok {
		commandHandler.logger.Error("n is not a valid decimal integer")
		return nil, false
	}
	e, ok := new(big.Int).SetString(eFlag, 10)
	if !ok {
		commandHandler.logger.Error("e is not a valid decimal integer")
		return nil, false
	}

	return &rsaDomain.PublicKey{E: e, N: n}, true
}

func (commandHandler *CipherCommandHandler) readPrivateKey(cmd *cobra.Command) (*rsaDomain.PrivateKey, bool) {
	nFlag, err := cmd.Flags().GetString("n")
	if err != nil {
		commandHandler.logger.Error("invalid n flag: ", err)
		return nil, false
	}
	dFlag, err := cmd.Flags().GetString("d")
	if err != nil {
		commandHandler.logger.Error("invalid d flag: ", err)
		return nil, false
	}

	n, ok := new(big.Int).SetString(nFlag, 10)
	if !ok {
		commandHandler.logger.Error("n is not a valid decimal integer")
		return nil, false
	}
	d, ok := new(big.Int).SetString(dFlag, 10)
	if !ok {
		commandHandler.logger.Error("d is not a valid decimal integer")
		return nil, false
	}

	return &rsaDomain.PrivateKey{D: d, N: n}, true
}

// InitCipherCommands registers the encrypt and decrypt commands
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create cipher command handler %w", err)
	}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with an RSA public key",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("n", "", "", "Modulus n (decimal)")
	encryptCmd.Flags().StringP("e", "", "", "Public exponent e (decimal)")
	encryptCmd.Flags().StringP("message", "", "", "Plaintext message to encrypt")
	encryptCmd.Flags().StringP("mode", "", "runes", "Encoding mode: runes (one integer per character) or text (single base64 value)")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext with an RSA private key",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("n", "", "", "Modulus n (decimal)")
	decryptCmd.Flags().StringP("d", "", "", "Private exponent d (decimal)")
	decryptCmd.Flags().StringP("cipher", "", "", "Comma-separated ciphertext integers (runes mode)")
	decryptCmd.Flags().StringP("cipher-b64", "", "", "Base64 ciphertext (text mode)")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
