package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/eaglebank/workshop/shared/models"
	"github.com/eaglebank/workshop/workshop-service/internal/config"
	"github.com/eaglebank/workshop/workshop-service/internal/workshop"
)

func main() {
	cfg := config.Load()

	var opts []workshop.Option
	if cfg.RandomSeed != 0 {
		opts = append(opts, workshop.WithSeed(cfg.RandomSeed))
	}
	w, err := workshop.New(opts...)
	if err != nil {
		log.Fatalf("Failed to build workshop: %v", err)
	}

	// Counting
	fmt.Printf("Holdings with companies: %d\n", w.HoldingsWithCompanies())
	fmt.Printf("Companies: %d, users: %d, accounts: %d\n", w.CompaniesAmount(), w.AllUserAmount(), w.AllUserAccountsAmount())
	fmt.Printf("Women: %d, sum of squared ages: %d\n", w.WomanAmount(), w.AgeSquaresSum())

	// Names
	fmt.Printf("Holdings: %s\n", w.HoldingNamesAsString())
	fmt.Printf("Companies: %s\n", w.AllCompaniesNamesAsString())
	fmt.Printf("Currencies: %s\n", w.AllCurrencies())
	fmt.Printf("First names: %s\n", w.UserNames())

	// Money
	if richest, ok := w.RichestWoman().Get(); ok {
		fmt.Printf("Richest woman: %s\n", richest.FullName())
	}
	popular, err := w.MostPopularAccountType()
	if err != nil {
		log.Fatalf("Failed to find most popular account type: %v", err)
	}
	fmt.Printf("Most popular account type: %s\n", popular)
	money := w.MoneyOnAccounts()
	for _, t := range models.AccountTypes {
		fmt.Printf("  %s: %s PLN\n", t, models.FormatAmount(money[t]))
	}
	fmt.Printf("Money of other sex: %s PLN\n", models.FormatAmount(w.OtherSexMoneyInPLN()))

	fmt.Printf("Users older than %d:\n", cfg.OldWomanAge)
	fmt.Printf("Old women: %s\n", strings.Join(w.OldWoman(cfg.OldWomanAge), ", "))

	users, err := w.RandomUsers(cfg.RandomUsers)
	if err != nil {
		log.Fatalf("Failed to draw random users: %v", err)
	}
	for _, u := range users {
		fmt.Printf("Random user: %s\n", w.AdultantStatus(w.FindUser(func(other models.User) bool { return other.ID == u.ID })))
	}

	fmt.Println("All users:")
	if err := w.ShowAllUsers(); err != nil {
		log.Fatalf("Failed to show users: %v", err)
	}

	if err := w.SaveAccountsInFile(cfg.AccountsFile); err != nil {
		log.Fatalf("Failed to save accounts: %v", err)
	}
}
