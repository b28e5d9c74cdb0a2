package testutil

// FoodScenario is a "Food" category with a lunch and a dinner on consecutive days.
var FoodScenario = TestDBOptions{
	Categories: []string{"Food"},
	Expenses: []SeedExpense{
		{Category: "Food", Amount: 50.0, Date: "2024-07-24", Description: "lunch"},
		{Category: "Food", Amount: 150.0, Date: "2024-07-25", Description: "dinner"},
	},
}

// HouseholdScenario spreads expenses over several categories and months.
var HouseholdScenario = TestDBOptions{
	Categories: []string{"Groceries", "Rent", "Transport"},
	Expenses: []SeedExpense{
		{Category: "Rent", Amount: 1200, Date: "2024-06-01", Description: "June rent"},
		{Category: "Groceries", Amount: 85.4, Date: "2024-06-03", Description: "market"},
		{Category: "Transport", Amount: 30, Date: "2024-06-15", Description: "bus pass"},
		{Category: "Rent", Amount: 1200, Date: "2024-07-01", Description: "July rent"},
		{Category: "Groceries", Amount: 64.1, Date: "2024-07-02", Description: "market"},
		{Category: "Groceries", Amount: -10, Date: "2024-07-03", Description: "returned bottles"},
	},
}
