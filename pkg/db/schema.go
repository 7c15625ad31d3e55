// Package db provides SQLite database management for the bank back office.
package db

// Schema defines the SQL statements to create database tables.
//
// Monetary columns (balance, overdraft, subbranchAsset, amount) are stored as
// TEXT and handled with exact decimal arithmetic in Go; SQLite numeric affinity
// would silently convert them to floats.
const Schema = `
-- Subbranches with their running managed-asset total
CREATE TABLE IF NOT EXISTS subbranch (
    subbranchName TEXT PRIMARY KEY,
    city TEXT NOT NULL,
    subbranchAsset TEXT NOT NULL DEFAULT '0'
);

-- Clients (lifecycle managed outside the core; rows needed for ownership edges)
CREATE TABLE IF NOT EXISTS client (
    clientID TEXT PRIMARY KEY,
    employeeID TEXT,
    clientName TEXT,
    clientTel TEXT,
    clientAddr TEXT,
    contactName TEXT,
    contactTel TEXT,
    contactEmail TEXT,
    contactRelationship TEXT,
    serviceType TEXT
);

-- Base account rows; exactly one subtype row exists per account
CREATE TABLE IF NOT EXISTS account (
    accountID TEXT PRIMARY KEY,
    balance TEXT NOT NULL,
    openDate TEXT NOT NULL               -- YYYY-MM-DD
);

CREATE TABLE IF NOT EXISTS savingaccount (
    accountID TEXT PRIMARY KEY REFERENCES account(accountID),
    balance TEXT NOT NULL,
    openDate TEXT NOT NULL,
    interest REAL NOT NULL,
    currencyType TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS checkingaccount (
    accountID TEXT PRIMARY KEY REFERENCES account(accountID),
    balance TEXT NOT NULL,
    openDate TEXT NOT NULL,
    overdraft TEXT NOT NULL
);

-- Ownership edges between clients and accounts
CREATE TABLE IF NOT EXISTS own (
    accountID TEXT NOT NULL REFERENCES account(accountID),
    clientID TEXT NOT NULL REFERENCES client(clientID),
    lastVisitTime TEXT NOT NULL,         -- YYYY-MM-DD HH:MM:SS
    PRIMARY KEY (accountID, clientID)
);

CREATE INDEX IF NOT EXISTS idx_own_client
    ON own(clientID);

-- Per-client-per-subbranch account management index:
-- at most one saving and one checking account per row
CREATE TABLE IF NOT EXISTS accountmanagement (
    subbranchName TEXT NOT NULL REFERENCES subbranch(subbranchName),
    clientID TEXT NOT NULL REFERENCES client(clientID),
    savingAccountID TEXT,
    checkingAccountID TEXT,
    PRIMARY KEY (subbranchName, clientID)
);

CREATE INDEX IF NOT EXISTS idx_accountmanagement_saving
    ON accountmanagement(savingAccountID);

CREATE INDEX IF NOT EXISTS idx_accountmanagement_checking
    ON accountmanagement(checkingAccountID);

-- Loans and per-date payment records (read-only inputs for reporting)
CREATE TABLE IF NOT EXISTS loan (
    loanID TEXT PRIMARY KEY,
    amount TEXT NOT NULL,
    subbranchName TEXT NOT NULL REFERENCES subbranch(subbranchName)
);

CREATE TABLE IF NOT EXISTS payment (
    loanID TEXT NOT NULL REFERENCES loan(loanID),
    date TEXT NOT NULL,                  -- YYYY-MM-DD
    amount TEXT NOT NULL,
    PRIMARY KEY (loanID, date)
);

CREATE TABLE IF NOT EXISTS receiveloan (
    loanID TEXT NOT NULL REFERENCES loan(loanID),
    clientID TEXT NOT NULL REFERENCES client(clientID),
    PRIMARY KEY (loanID, clientID)
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
