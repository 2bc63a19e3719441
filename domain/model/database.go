package model

// DatabaseType discriminates the database union.
type DatabaseType string

const (
	DatabaseSQLite     DatabaseType = "sqlite"
	DatabasePostgreSQL DatabaseType = "postgresql"
)

// Database selects the backing database. SQLite needs no further
// configuration; PostgreSQL requires connection details and a credentials
// Secret reference.
type Database struct {
	Type       DatabaseType
	PostgreSQL *PostgreSQLDatabase
}

// PostgreSQLDatabase describes an externally managed PostgreSQL instance.
type PostgreSQLDatabase struct {
	Host string
	Port int
	Name string
	// AuthSecret references the Secret carrying the database credentials.
	AuthSecret DatabaseAuth
}

// DatabaseAuth points at the username and password keys of one Secret.
// Key names default to "username" and "password".
type DatabaseAuth struct {
	Name        string
	UserKey     string
	PasswordKey string
}
