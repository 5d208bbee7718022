package repository

import (
	"github.com/eaglebank/workshop/shared/models"
	"github.com/shopspring/decimal"
)

// generateHoldings builds the fixed workshop dataset. Every value here is
// load-bearing: counts, ages and balances are asserted by the query tests.
func generateHoldings() []models.Holding {
	return []models.Holding{
		holding("Nestle",
			company("Nescafe",
				user("Adam", "Wojcik", 30, models.Man,
					account("01439563", "1500.00", models.PLN, models.ROR1),
					account("01258176", "5000.00", models.PLN, models.LO2),
				),
				user("Zenon", "Kucowski", 45, models.Man,
					account("01514002", "3200.50", models.PLN, models.ROR1),
					account("01782554", "800.00", models.EUR, models.RO1),
				),
				user("Halina", "Warszawska", 40, models.Woman,
					account("01150631", "4100.00", models.PLN, models.ROR1),
					account("01175954", "250.00", models.USD, models.ROR2),
				),
				user("Robin", "Obojetny", 25, models.Other,
					account("01961168", "1786.50", models.USD, models.LO2),
				),
			),
			company("Gerber",
				user("Alfred", "Pasibrzuch", 47, models.Man,
					account("01661913", "900.00", models.PLN, models.ROR1),
					account("01198702", "1200.00", models.CHF, models.LO1),
				),
				user("Zosia", "Psikuta", 67, models.Woman,
					account("01483452", "12000.00", models.PLN, models.ROR1),
					account("01711097", "8000.00", models.EUR, models.LO2),
					account("01160816", "5000.00", models.CHF, models.RO1),
				),
				user("Tomasz", "Mocarz", 35, models.Man,
					account("01632084", "2100.00", models.PLN, models.ROR1),
				),
			),
			company("Nestea",
				user("Karol", "Lewandowski", 56, models.Man,
					account("01325127", "3500.50", models.USD, models.LO2),
					account("01139317", "7000.00", models.PLN, models.ROR1),
				),
			),
		),
		holding("Coca-Cola",
			company("Fanta",
				user("Amadeusz", "Wolny", 28, models.Man,
					account("01190122", "650.00", models.PLN, models.ROR1),
				),
				user("Magda", "Kowalska", 33, models.Woman,
					account("01554710", "1200.00", models.PLN, models.LO2),
					account("01538485", "2300.00", models.PLN, models.ROR2),
				),
				user("Piotr", "Nowicki", 41, models.Man,
					account("01173248", "1800.00", models.PLN, models.ROR1),
					account("01352353", "400.00", models.USD, models.LO1),
				),
			),
			company("Sprite",
				user("Jan", "Bazuka", 38, models.Man,
					account("01195119", "2500.00", models.PLN, models.ROR1),
					account("01677814", "4100.00", models.EUR, models.LO2),
					account("01545140", "1000.00", models.USD, models.RO1),
				),
				user("Zenek", "Jawowy", 22, models.Man,
					account("01161981", "150.00", models.PLN, models.ROR2),
				),
			),
			company("Lays",
				user("Bartek", "Chrupek", 19, models.Man,
					account("01967017", "320.00", models.PLN, models.ROR1),
				),
				user("Sasza", "Neutralny", 27, models.Other,
					account("01692921", "2000.00", models.EUR, models.LO1),
					account("01229815", "600.00", models.PLN, models.RO1),
				),
			),
		),
		holding("Pepsico",
			company("Pepsi",
				user("Filip", "Gazowany", 31, models.Man,
					account("01334083", "1100.00", models.USD, models.ROR2),
					account("01761259", "900.00", models.PLN, models.ROR1),
				),
				user("Monika", "Nowak", 29, models.Woman,
					account("01757911", "3000.00", models.PLN, models.LO1),
				),
				user("Marek", "Zielinski", 44, models.Man,
					account("01711316", "2718.24", models.CHF, models.LO2),
					account("01164867", "5400.00", models.PLN, models.ROR1),
				),
			),
			company("Mirinda",
				user("Wojtek", "Pomaranczowy", 24, models.Man,
					account("01705136", "450.00", models.CHF, models.ROR2),
					account("01713984", "700.00", models.PLN, models.RO1),
				),
				user("Kris", "Nijaki", 25, models.Other,
					account("01515949", "950.00", models.PLN, models.LO1),
				),
			),
		),
	}
}

func holding(name string, companies ...models.Company) models.Holding {
	return models.Holding{Name: name, Companies: companies}
}

func company(name string, users ...models.User) models.Company {
	return models.Company{Name: name, Users: users}
}

func user(firstName, lastName string, age int, sex models.Sex, accounts ...models.Account) models.User {
	return models.User{
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Sex:       sex,
		Accounts:  accounts,
	}
}

func account(number, amount string, currency models.Currency, accountType models.AccountType) models.Account {
	return models.Account{
		Number:   number,
		Amount:   decimal.RequireFromString(amount),
		Currency: currency,
		Type:     accountType,
	}
}
