// Package cmd — send command.
package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/tgmarkup/config"
	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/gaurav-prasanna/tgmarkup/core/send"
	"github.com/gaurav-prasanna/tgmarkup/source"
	"github.com/spf13/cobra"
)

var flagChatID int64

// newSender is replaceable in tests.
var newSender = func(c *config.Config) core.Sender {
	return send.New(c.BotToken,
		send.WithAPIURL(c.APIURL),
		send.WithTimeout(c.Timeout),
		send.WithMaxRetries(c.MaxRetries),
	)
}

var sendCmd = &cobra.Command{
	Use:   "send <path>",
	Short: "Compile a markup document and deliver it through the Bot API",
	Long: `Send compiles a markup document and posts it with sendMessage.
The bot token and default chat come from TGMARKUP_BOT_TOKEN and
TGMARKUP_CHAT_ID (optionally read from the --env file).

Examples:
  tgmarkup send welcome.yaml
  tgmarkup send welcome.yaml --chat_id -1001234567890`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().Int64Var(&flagChatID, "chat_id", 0, "Target chat (default: TGMARKUP_CHAT_ID)")
}

func runSend(cmd *cobra.Command, args []string) error {
	if flagChatID != 0 {
		cfg.ChatID = flagChatID
	}
	if err := cfg.ValidateSend(); err != nil {
		return err
	}

	doc, err := source.Load(args[0])
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	msg, err := doc.Compile()
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	sender := newSender(cfg)
	id, err := sender.Send(cmd.Context(), cfg.ChatID, msg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), okf("✓ Sent message %d to chat %d", id, cfg.ChatID))
	return nil
}
