// File: app/app.go
package app

import (
	"errors"
	"fmt"
	"os"

	"go-ledger/config"
	"go-ledger/logger"
	"go-ledger/model"
	"go-ledger/repository"
	"go-ledger/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// NewLedger wires an empty ledger according to cfg.
func NewLedger(cfg config.Config) *service.LedgerService {
	accountRepo := repository.NewAccountRepository()
	ids := model.NewSequenceFrom(cfg.Ledger.FirstID)
	return service.NewLedgerService(accountRepo, ids,
		service.WithStrictWithdrawals(cfg.Ledger.StrictWithdrawals))
}

// Run parses args, loads configuration and runs the demo scenario: open an
// account with the configured initial balance and deposit into it.
// It returns the process exit code.
func Run(args []string) int {
	flags := pflag.NewFlagSet("ledger", pflag.ContinueOnError)
	configPath := flags.String("config", ".", "directory containing config.yml")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err := config.LoadConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	logger.Init()
	logger.Log.Info("App started")

	if err := runScenario(config.AppConfig); err != nil {
		logger.Log.WithError(err).Error("Scenario failed")
		return 1
	}

	logger.Log.Info("App terminated")
	return 0
}

func runScenario(cfg config.Config) error {
	ledger := NewLedger(cfg)

	accountID := ledger.OpenNewBankAccount(cfg.Demo.InitialBalance)
	if err := ledger.Deposit(accountID, cfg.Demo.DepositAmount); err != nil {
		return err
	}

	balance, err := ledger.Balance(accountID)
	if err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"balance":    balance,
	}).Info("Final balance")
	return nil
}
