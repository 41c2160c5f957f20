package main

import (
	"errors"
	"log"
	"os"

	"github.com/Shenile/cafe-crm/configs"
	"github.com/Shenile/cafe-crm/console"
	"github.com/Shenile/cafe-crm/repository"
	"github.com/Shenile/cafe-crm/services"

	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := configs.NewLogger(cfg.LogFile)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := configs.SeedCatalog(db); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "wipe" {
		if err := repository.Wipe(db); err != nil {
			log.Fatalf("wipe failed: %v", err)
		}
		logger.Info("transactional data wiped")
		return
	}

	ui := console.NewTerminal(os.Stdin, os.Stdout)

	customers := repository.NewCustomerRepository()
	orders := repository.NewOrderRepository()
	menu := repository.NewMenuRepository()
	billing := repository.NewBillingRepository()
	discounts := repository.NewDiscountRepository()
	loyaltyRepo := repository.NewLoyaltyRepository()
	feedback := repository.NewFeedbackRepository()

	loyalty := services.NewLoyaltyService(loyaltyRepo, billing, cfg.ConversionRate, cfg.EarnRate, logger)
	reviews := services.NewFeedbackService(feedback, ui)
	register := services.NewRegistrationService(db, customers, loyaltyRepo, loyalty, cfg.NewbiePoints, ui, logger)
	checkout := services.NewCheckoutService(db, orders, menu, billing, discounts, loyalty, reviews, ui, logger)

	logger.Info("cafe-crm started", zap.String("db", cfg.DBSource))

	for ui.ConfirmYesNo("Do you want to continue?") {
		customer, err := register.SelectCustomer()
		if err != nil {
			ui.Say("Error occurred: %v", err)
			logger.Error("customer selection failed", zap.Error(err))
			continue
		}

		if err := checkout.Run(customer); err != nil {
			if errors.Is(err, services.ErrVisitAborted) {
				ui.Say("Transaction can't be continued without placing an order.")
				continue
			}
			ui.Say("Error occurred: %v", err)
		}
	}
}
