package database

import (
	"context"
	"time"

	"courier_oms/internal/model"
)

const customerColumns = `id, full_name, email, phone, address, city, province, zip_code, created_at, updated_at`

func (s *postgresStorage) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListCustomers")
	defer span.End()

	customers := []model.Customer{}
	if err := s.db.SelectContext(ctx, &customers, `SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`); err != nil {
		return nil, fail("list_customers", "ошибка получения клиентов", err)
	}
	return customers, nil
}

// SearchCustomers ищет подстроку в имени, email или телефоне без учета регистра.
func (s *postgresStorage) SearchCustomers(ctx context.Context, query string) ([]model.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "DB.SearchCustomers")
	defer span.End()

	customers := []model.Customer{}
	q := `SELECT ` + customerColumns + ` FROM customers
		WHERE full_name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1
		ORDER BY created_at DESC`
	if err := s.db.SelectContext(ctx, &customers, q, likePattern(query)); err != nil {
		return nil, fail("search_customers", "ошибка поиска клиентов", err)
	}
	return customers, nil
}

func (s *postgresStorage) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetCustomer")
	defer span.End()

	var customer model.Customer
	if err := s.db.GetContext(ctx, &customer, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id); err != nil {
		return nil, fail("get_customer", "не удалось получить клиента", err)
	}
	return &customer, nil
}

func (s *postgresStorage) CreateCustomer(ctx context.Context, c *model.Customer) error {
	ctx, span := s.tracer.Start(ctx, "DB.CreateCustomer")
	defer span.End()

	query := `INSERT INTO customers (id, full_name, email, phone, address, city, province, zip_code, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := s.db.ExecContext(ctx, query, c.ID, c.FullName, c.Email, c.Phone, c.Address, c.City, c.Province, c.ZipCode, c.CreatedAt, c.UpdatedAt); err != nil {
		return fail("create_customer", "не удалось создать клиента", err)
	}
	return nil
}

func (s *postgresStorage) UpdateCustomer(ctx context.Context, id string, p *model.CustomerPatch) (*model.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateCustomer")
	defer span.End()

	b := &updateBuilder{}
	if p.FullName != nil {
		b.set("full_name", *p.FullName)
	}
	if p.Email != nil {
		b.set("email", *p.Email)
	}
	if p.Phone != nil {
		b.set("phone", *p.Phone)
	}
	if p.Address != nil {
		b.set("address", *p.Address)
	}
	if p.City != nil {
		b.set("city", *p.City)
	}
	if p.Province != nil {
		b.set("province", *p.Province)
	}
	if p.ZipCode != nil {
		b.set("zip_code", *p.ZipCode)
	}
	b.set("updated_at", time.Now().UTC())
	query, args := b.query("customers", id, customerColumns)

	var customer model.Customer
	if err := s.db.GetContext(ctx, &customer, query, args...); err != nil {
		return nil, fail("update_customer", "не удалось обновить клиента", err)
	}
	return &customer, nil
}

func (s *postgresStorage) DeleteCustomer(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "DB.DeleteCustomer")
	defer span.End()

	res, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fail("delete_customer", "не удалось удалить клиента", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
