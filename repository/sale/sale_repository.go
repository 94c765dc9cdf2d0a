package sale

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbmotors/dealership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SaleRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, sale *model.SaleEntity) error
	List(ctx context.Context) ([]model.SaleEntity, error)
	ListByPhone(ctx context.Context, phone string) ([]model.SaleEntity, error)
	Delete(ctx context.Context, orderID string) error
	Count(ctx context.Context) (int64, error)
	ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, sales []model.SaleEntity) error
}

func NewSaleRepository(conn *sqlx.DB) SaleRepository {
	return &SQL{conn: conn}
}

const (
	saleColumns     = "order_id, session_id, car_id, price, timestamp"
	insertSaleQuery = `INSERT INTO sales (` + saleColumns + `) VALUES (?, ?, ?, ?, ?)`
	listSalesQuery  = `SELECT ` + saleColumns + ` FROM sales ORDER BY timestamp`
)

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, sale *model.SaleEntity) error {
	_, err := tx.ExecContext(ctx, insertSaleQuery, sale.OrderID, sale.SessionID, sale.CarID, sale.Price, sale.Timestamp)
	return err
}

func (s *SQL) List(ctx context.Context) ([]model.SaleEntity, error) {
	return s.scanList(ctx, listSalesQuery)
}

// ListByPhone resolves a customer's orders across all of their sessions by
// joining through the session table.
func (s *SQL) ListByPhone(ctx context.Context, phone string) ([]model.SaleEntity, error) {
	query := `SELECT s.order_id, s.session_id, s.car_id, s.price, s.timestamp
FROM sales s
JOIN customer_sessions cs ON cs.token = s.session_id
WHERE cs.phone = ?
ORDER BY s.timestamp`
	return s.scanList(ctx, query, phone)
}

func (s *SQL) scanList(ctx context.Context, query string, args ...any) ([]model.SaleEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]model.SaleEntity, 0)
	for rows.Next() {
		var sl model.SaleEntity
		if err := rows.StructScan(&sl); err != nil {
			return nil, err
		}
		sales = append(sales, sl)
	}
	return sales, rows.Err()
}

func (s *SQL) Delete(ctx context.Context, orderID string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM sales WHERE order_id = ?", orderID)
	return err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM sales")
	return total, err
}

func (s *SQL) ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, sales []model.SaleEntity) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM sales"); err != nil {
		return err
	}
	for i := range sales {
		sl := sales[i]
		if _, err := tx.ExecContext(ctx, insertSaleQuery, sl.OrderID, sl.SessionID, sl.CarID, sl.Price, sl.Timestamp); err != nil {
			return err
		}
	}
	return nil
}
