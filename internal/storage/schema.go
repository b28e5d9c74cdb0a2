package storage

// Schema creation is idempotent and additive-only. Foreign-key enforcement is
// left at the SQLite default (off), so the expense reference is declarative.
const (
	createCategoriesTable = `
		CREATE TABLE IF NOT EXISTS Categories (
			category_id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_name TEXT NOT NULL,
			is_deleted INTEGER DEFAULT 0
		)`

	createExpensesTable = `
		CREATE TABLE IF NOT EXISTS Expenses (
			expense_id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id INTEGER,
			amount REAL NOT NULL,
			date TEXT NOT NULL,
			description TEXT,
			is_deleted INTEGER DEFAULT 0,
			FOREIGN KEY (category_id) REFERENCES Categories(category_id)
		)`
)
