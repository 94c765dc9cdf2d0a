package service

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbmotors/dealership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ServiceRepository interface {
	Insert(ctx context.Context, svc *model.ServiceEntity) error
	Get(ctx context.Context, serviceID string) (*model.ServiceEntity, error)
	List(ctx context.Context) ([]model.ServiceEntity, error)
	ListByPhone(ctx context.Context, phone string) ([]model.ServiceEntity, error)
	UpdateStatus(ctx context.Context, serviceID, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, services []model.ServiceEntity) error
}

func NewServiceRepository(conn *sqlx.DB) ServiceRepository {
	return &SQL{conn: conn}
}

const (
	serviceColumns = "service_id, owner_name, phone, car_id, service_date, notes, status, timestamp"
	insertService  = `INSERT INTO services (` + serviceColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
)

func (s *SQL) Insert(ctx context.Context, svc *model.ServiceEntity) error {
	_, err := s.conn.ExecContext(ctx, insertService,
		svc.ServiceID, svc.OwnerName, svc.Phone, svc.CarID, svc.ServiceDate,
		svc.Notes, svc.Status, svc.Timestamp)
	return err
}

func (s *SQL) Get(ctx context.Context, serviceID string) (*model.ServiceEntity, error) {
	var entity model.ServiceEntity
	err := s.conn.QueryRowxContext(ctx, "SELECT "+serviceColumns+" FROM services WHERE service_id = ?", serviceID).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.ServiceEntity, error) {
	return s.scanList(ctx, "SELECT "+serviceColumns+" FROM services ORDER BY timestamp")
}

func (s *SQL) ListByPhone(ctx context.Context, phone string) ([]model.ServiceEntity, error) {
	return s.scanList(ctx, "SELECT "+serviceColumns+" FROM services WHERE phone = ? ORDER BY timestamp", phone)
}

func (s *SQL) scanList(ctx context.Context, query string, args ...any) ([]model.ServiceEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]model.ServiceEntity, 0)
	for rows.Next() {
		var svc model.ServiceEntity
		if err := rows.StructScan(&svc); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

func (s *SQL) UpdateStatus(ctx context.Context, serviceID, status string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE services SET status = ? WHERE service_id = ?", status, serviceID)
	return err
}

func (s *SQL) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM services WHERE status = ?", status)
	return total, err
}

func (s *SQL) ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, services []model.ServiceEntity) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM services"); err != nil {
		return err
	}
	for i := range services {
		svc := services[i]
		if _, err := tx.ExecContext(ctx, insertService,
			svc.ServiceID, svc.OwnerName, svc.Phone, svc.CarID, svc.ServiceDate,
			svc.Notes, svc.Status, svc.Timestamp); err != nil {
			return err
		}
	}
	return nil
}
