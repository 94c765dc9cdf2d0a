package contact

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbmotors/dealership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	Insert(ctx context.Context, contact *model.ContactEntity) error
	List(ctx context.Context) ([]model.ContactEntity, error)
	ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, contacts []model.ContactEntity) error
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const insertContact = `INSERT INTO contacts (contact_id, name, email, message, timestamp) VALUES (?, ?, ?, ?, ?)`

func (s *SQL) Insert(ctx context.Context, contact *model.ContactEntity) error {
	_, err := s.conn.ExecContext(ctx, insertContact,
		contact.ContactID, contact.Name, contact.Email, contact.Message, contact.Timestamp)
	return err
}

func (s *SQL) List(ctx context.Context) ([]model.ContactEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, "SELECT contact_id, name, email, message, timestamp FROM contacts ORDER BY timestamp")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]model.ContactEntity, 0)
	for rows.Next() {
		var c model.ContactEntity
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *SQL) ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, contacts []model.ContactEntity) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return err
	}
	for i := range contacts {
		c := contacts[i]
		if _, err := tx.ExecContext(ctx, insertContact, c.ContactID, c.Name, c.Email, c.Message, c.Timestamp); err != nil {
			return err
		}
	}
	return nil
}
