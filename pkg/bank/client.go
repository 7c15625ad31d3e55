package bank

import (
	"context"
	"database/sql"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
)

// Client holds a client's contact and service metadata. Client lifecycle is
// managed outside the transactional core; these writes exist for operability
// of the CLI and for test setup.
type Client struct {
	ID                  string
	EmployeeID          sql.NullString
	Name                sql.NullString
	Tel                 sql.NullString
	Addr                sql.NullString
	ContactName         sql.NullString
	ContactTel          sql.NullString
	ContactEmail        sql.NullString
	ContactRelationship sql.NullString
	ServiceType         sql.NullString
}

// CreateClient inserts a client row.
func CreateClient(ctx context.Context, q db.Querier, c Client) error {
	query := `
		INSERT INTO client (clientID, employeeID, clientName, clientTel, clientAddr,
			contactName, contactTel, contactEmail, contactRelationship, serviceType)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		c.ID, c.EmployeeID, c.Name, c.Tel, c.Addr,
		c.ContactName, c.ContactTel, c.ContactEmail, c.ContactRelationship, c.ServiceType,
	)
	if err != nil {
		return storageErr("insert client", err)
	}
	return nil
}

// QueryClient fetches a client by id.
func QueryClient(ctx context.Context, q db.Querier, clientID string) (Client, error) {
	query := `
		SELECT clientID, employeeID, clientName, clientTel, clientAddr,
			contactName, contactTel, contactEmail, contactRelationship, serviceType
		FROM client
		WHERE clientID = ?
	`

	var c Client
	err := q.QueryRowContext(ctx, query, clientID).Scan(
		&c.ID, &c.EmployeeID, &c.Name, &c.Tel, &c.Addr,
		&c.ContactName, &c.ContactTel, &c.ContactEmail, &c.ContactRelationship, &c.ServiceType,
	)
	if err == sql.ErrNoRows {
		return Client{}, &NotFoundError{Entity: "client", Key: clientID}
	}
	if err != nil {
		return Client{}, storageErr("query client", err)
	}
	return c, nil
}
