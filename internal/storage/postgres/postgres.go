package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sushinaruto/backend/internal/types/contact"
	"github.com/sushinaruto/backend/internal/types/menu"
	"github.com/sushinaruto/backend/internal/types/order"
	"github.com/sushinaruto/backend/internal/types/reservation"
	"github.com/sushinaruto/backend/internal/types/user"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &PostgresStorage{db: db}

	if err := s.db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStorage) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL,
            last_login TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS menu_categories (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            added_by TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id SERIAL PRIMARY KEY,
            category_id INT NOT NULL REFERENCES menu_categories(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC(10,2) NOT NULL DEFAULT 0,
            image TEXT NOT NULL DEFAULT '',
            featured BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE TABLE IF NOT EXISTS special_menu (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC(10,2) NOT NULL DEFAULT 0,
            image TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            item TEXT NOT NULL,
            price NUMERIC(10,2) NOT NULL DEFAULT 0,
            qty INT NOT NULL DEFAULT 1,
            email TEXT NOT NULL,
            mobile TEXT NOT NULL,
            address TEXT NOT NULL,
            delivery TEXT NOT NULL,
            order_type TEXT NOT NULL DEFAULT 'now',
            order_date TEXT,
            order_time TEXT,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS reservations (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            date TEXT NOT NULL,
            time TEXT NOT NULL,
            guests INT NOT NULL DEFAULT 1,
            special_requests TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS contacts (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            message TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL
        )`,
	}
	for _, q := range stmts {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

// placeholders renders $from..$from+n-1 for IN lists.
func placeholders(from, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ",")
}

// ---------------- users ----------------

func (s *PostgresStorage) CreateUser(ctx context.Context, u *user.User) error {
	q := `INSERT INTO users (username,email,password_hash,role,is_active,created_at)
          VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	return s.db.QueryRowContext(ctx, q,
		u.Username, u.Email, u.PasswordHash, u.Role, u.IsActive, u.CreatedAt,
	).Scan(&u.ID)
}

func (s *PostgresStorage) scanUser(row *sql.Row) (*user.User, error) {
	u := &user.User{}
	var lastLogin sql.NullTime
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &lastLogin); err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}

func (s *PostgresStorage) FindUserByUsername(ctx context.Context, username string) (*user.User, error) {
	q := `SELECT id,username,email,password_hash,role,is_active,created_at,last_login
          FROM users WHERE username=$1`
	return s.scanUser(s.db.QueryRowContext(ctx, q, username))
}

func (s *PostgresStorage) FindUserByEmail(ctx context.Context, email string) (*user.User, error) {
	q := `SELECT id,username,email,password_hash,role,is_active,created_at,last_login
          FROM users WHERE email=$1`
	return s.scanUser(s.db.QueryRowContext(ctx, q, email))
}

func (s *PostgresStorage) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `UPDATE users SET last_login=now() WHERE id=$1`, id)
	return err
}

// ---------------- orders ----------------

const orderColumns = `id, item, price, qty, email, mobile, address, delivery, order_type, order_date, order_time, status, created_at`

func scanOrderRow(scan func(dest ...any) error) (order.Order, error) {
	var o order.Order
	var odate, otime sql.NullString
	err := scan(&o.ID, &o.Item, &o.Price, &o.Qty, &o.Email, &o.Mobile, &o.Address,
		&o.Delivery, &o.OrderType, &odate, &otime, &o.Status, &o.CreatedAt)
	if err != nil {
		return o, err
	}
	if odate.Valid {
		v := odate.String
		o.OrderDate = &v
	}
	if otime.Valid {
		v := otime.String
		o.OrderTime = &v
	}
	return o, nil
}

func (s *PostgresStorage) collectOrders(rows *sql.Rows) ([]order.Order, error) {
	defer rows.Close()
	var out []order.Order
	for rows.Next() {
		o, err := scanOrderRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) CreateOrder(ctx context.Context, o *order.Order) error {
	q := `INSERT INTO orders (item,price,qty,email,mobile,address,delivery,order_type,order_date,order_time,status,created_at)
          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`
	return s.db.QueryRowContext(ctx, q,
		o.Item, o.Price, o.Qty, o.Email, o.Mobile, o.Address, o.Delivery,
		o.OrderType, o.OrderDate, o.OrderTime, o.Status, o.CreatedAt,
	).Scan(&o.ID)
}

func (s *PostgresStorage) FindOrderByID(ctx context.Context, id int64) (*order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	o, err := scanOrderRow(s.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *PostgresStorage) ListOrdersByIDs(ctx context.Context, ids []int64) ([]order.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id IN (` + placeholders(1, len(ids)) + `) ORDER BY created_at DESC`
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

func (s *PostgresStorage) ListOrdersByEmail(ctx context.Context, email string) ([]order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE email=$1 ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, q, email)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

func (s *PostgresStorage) ListOrdersByEmailAndStatus(ctx context.Context, email string, status order.Status) ([]order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE email=$1 AND status=$2 ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, q, email, status)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

func (s *PostgresStorage) ListOrdersByStatus(ctx context.Context, statuses []order.Status) ([]order.Order, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	q := `SELECT ` + orderColumns + ` FROM orders WHERE status IN (` + placeholders(1, len(statuses)) + `) ORDER BY created_at DESC`
	args := make([]any, len(statuses))
	for i, st := range statuses {
		args[i] = st
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

func (s *PostgresStorage) ListActiveOrders(ctx context.Context) ([]order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE status NOT IN ($1,$2) ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, q, order.StatusDelivered, order.StatusCancelled)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

func (s *PostgresStorage) ListOrdersFiltered(ctx context.Context, status, date string) ([]order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders`
	var conds []string
	var args []any
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if date != "" {
		args = append(args, date)
		conds = append(conds, fmt.Sprintf("created_at::date=$%d::date", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC"
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

func (s *PostgresStorage) DistinctStatuses(ctx context.Context) ([]order.Status, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT status FROM orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []order.Status
	for rows.Next() {
		var st order.Status
		if err := rows.Scan(&st); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) UpdateOrderStatus(ctx context.Context, id int64, status order.Status) error {
	_, err := s.db.ExecContext(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, status, id)
	return err
}

func (s *PostgresStorage) CountOrdersByStatus(ctx context.Context, statuses []order.Status) (int, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	q := `SELECT COUNT(*) FROM orders WHERE status IN (` + placeholders(1, len(statuses)) + `)`
	args := make([]any, len(statuses))
	for i, st := range statuses {
		args[i] = st
	}
	var n int
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *PostgresStorage) DeleteOrder(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}

// ---------------- dashboard aggregates ----------------

func (s *PostgresStorage) CountOrders(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

func (s *PostgresStorage) CountOrdersCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE created_at >= $1`, since).Scan(&n)
	return n, err
}

func (s *PostgresStorage) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(price*qty),0) FROM orders`).Scan(&revenue)
	return revenue, err
}

func (s *PostgresStorage) RecentOrders(ctx context.Context, limit int) ([]order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	return s.collectOrders(rows)
}

func (s *PostgresStorage) TopProducts(ctx context.Context, limit int) ([]menu.ProductSales, error) {
	// Orders keep the item name as free text; the join is by name, the
	// same weak linkage the image lookup uses.
	q := `SELECT m.name, c.name, COUNT(o.id), COALESCE(SUM(o.price*o.qty),0)
          FROM menu_items m
          JOIN menu_categories c ON c.id = m.category_id
          JOIN orders o ON o.item = m.name
          GROUP BY m.name, c.name
          ORDER BY COUNT(o.id) DESC
          LIMIT $1`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []menu.ProductSales
	for rows.Next() {
		var p menu.ProductSales
		if err := rows.Scan(&p.Name, &p.Category, &p.Sales, &p.Revenue); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ---------------- menu ----------------

func (s *PostgresStorage) CreateCategory(ctx context.Context, c *menu.Category) error {
	q := `INSERT INTO menu_categories (name,added_by,created_at) VALUES ($1,$2,$3) RETURNING id`
	return s.db.QueryRowContext(ctx, q, c.Name, c.AddedBy, c.CreatedAt).Scan(&c.ID)
}

func (s *PostgresStorage) FindCategoryByID(ctx context.Context, id int64) (*menu.Category, error) {
	c := &menu.Category{}
	q := `SELECT id,name,added_by,created_at FROM menu_categories WHERE id=$1`
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.AddedBy, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *PostgresStorage) UpdateCategory(ctx context.Context, c *menu.Category) error {
	_, err := s.db.ExecContext(ctx, `UPDATE menu_categories SET name=$1, added_by=$2 WHERE id=$3`, c.Name, c.AddedBy, c.ID)
	return err
}

func (s *PostgresStorage) DeleteCategory(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM menu_categories WHERE id=$1`, id)
	return err
}

func (s *PostgresStorage) ListCategories(ctx context.Context) ([]menu.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,name,added_by,created_at FROM menu_categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []menu.Category
	for rows.Next() {
		var c menu.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.AddedBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const itemColumns = `id, category_id, name, description, price, image, featured`

func (s *PostgresStorage) collectItems(rows *sql.Rows) ([]menu.Item, error) {
	defer rows.Close()
	var out []menu.Item
	for rows.Next() {
		var it menu.Item
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.Image, &it.Featured); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) CreateItem(ctx context.Context, it *menu.Item) error {
	q := `INSERT INTO menu_items (category_id,name,description,price,image,featured)
          VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	return s.db.QueryRowContext(ctx, q,
		it.CategoryID, it.Name, it.Description, it.Price, it.Image, it.Featured,
	).Scan(&it.ID)
}

func (s *PostgresStorage) FindItemByID(ctx context.Context, id int64) (*menu.Item, error) {
	var it menu.Item
	q := `SELECT ` + itemColumns + ` FROM menu_items WHERE id=$1`
	err := s.db.QueryRowContext(ctx, q, id).
		Scan(&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.Image, &it.Featured)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *PostgresStorage) FindItemByName(ctx context.Context, name string) (*menu.Item, error) {
	var it menu.Item
	q := `SELECT ` + itemColumns + ` FROM menu_items WHERE name=$1`
	err := s.db.QueryRowContext(ctx, q, name).
		Scan(&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.Image, &it.Featured)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *PostgresStorage) UpdateItem(ctx context.Context, it *menu.Item) error {
	q := `UPDATE menu_items SET category_id=$1, name=$2, description=$3, price=$4, image=$5, featured=$6 WHERE id=$7`
	_, err := s.db.ExecContext(ctx, q, it.CategoryID, it.Name, it.Description, it.Price, it.Image, it.Featured, it.ID)
	return err
}

func (s *PostgresStorage) DeleteItem(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	return err
}

func (s *PostgresStorage) ListItems(ctx context.Context) ([]menu.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM menu_items ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return s.collectItems(rows)
}

func (s *PostgresStorage) ListItemsByCategory(ctx context.Context, categoryID int64) ([]menu.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM menu_items WHERE category_id=$1 ORDER BY name`, categoryID)
	if err != nil {
		return nil, err
	}
	return s.collectItems(rows)
}

func (s *PostgresStorage) ListFeaturedItems(ctx context.Context, limit int) ([]menu.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM menu_items WHERE featured ORDER BY name LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return s.collectItems(rows)
}

func (s *PostgresStorage) SearchItems(ctx context.Context, query string) ([]menu.Item, error) {
	q := `SELECT ` + itemColumns + ` FROM menu_items WHERE name ILIKE $1 OR description ILIKE $1 ORDER BY name`
	rows, err := s.db.QueryContext(ctx, q, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	return s.collectItems(rows)
}

func (s *PostgresStorage) CreateSpecial(ctx context.Context, sp *menu.SpecialItem) error {
	q := `INSERT INTO special_menu (name,description,price,image) VALUES ($1,$2,$3,$4) RETURNING id`
	return s.db.QueryRowContext(ctx, q, sp.Name, sp.Description, sp.Price, sp.Image).Scan(&sp.ID)
}

func (s *PostgresStorage) FindSpecialByID(ctx context.Context, id int64) (*menu.SpecialItem, error) {
	var sp menu.SpecialItem
	q := `SELECT id,name,description,price,image FROM special_menu WHERE id=$1`
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&sp.ID, &sp.Name, &sp.Description, &sp.Price, &sp.Image); err != nil {
		return nil, err
	}
	return &sp, nil
}

func (s *PostgresStorage) UpdateSpecial(ctx context.Context, sp *menu.SpecialItem) error {
	q := `UPDATE special_menu SET name=$1, description=$2, price=$3, image=$4 WHERE id=$5`
	_, err := s.db.ExecContext(ctx, q, sp.Name, sp.Description, sp.Price, sp.Image, sp.ID)
	return err
}

func (s *PostgresStorage) DeleteSpecial(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM special_menu WHERE id=$1`, id)
	return err
}

func (s *PostgresStorage) ListSpecials(ctx context.Context, limit int) ([]menu.SpecialItem, error) {
	q := `SELECT id,name,description,price,image FROM special_menu ORDER BY id`
	var args []any
	if limit > 0 {
		q += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []menu.SpecialItem
	for rows.Next() {
		var sp menu.SpecialItem
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Description, &sp.Price, &sp.Image); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// ---------------- reservations ----------------

const reservationColumns = `id, name, email, phone, date, time, guests, special_requests, status, created_at`

func (s *PostgresStorage) collectReservations(rows *sql.Rows) ([]reservation.Reservation, error) {
	defer rows.Close()
	var out []reservation.Reservation
	for rows.Next() {
		var r reservation.Reservation
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.Date, &r.Time,
			&r.Guests, &r.SpecialRequests, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) CreateReservation(ctx context.Context, r *reservation.Reservation) error {
	q := `INSERT INTO reservations (name,email,phone,date,time,guests,special_requests,status,created_at)
          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`
	return s.db.QueryRowContext(ctx, q,
		r.Name, r.Email, r.Phone, r.Date, r.Time, r.Guests, r.SpecialRequests, r.Status, r.CreatedAt,
	).Scan(&r.ID)
}

func (s *PostgresStorage) FindReservationByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	var r reservation.Reservation
	q := `SELECT ` + reservationColumns + ` FROM reservations WHERE id=$1`
	err := s.db.QueryRowContext(ctx, q, id).Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.Date,
		&r.Time, &r.Guests, &r.SpecialRequests, &r.Status, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *PostgresStorage) ListReservations(ctx context.Context, date, status string) ([]reservation.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations`
	var conds []string
	var args []any
	if date != "" {
		args = append(args, date)
		conds = append(conds, fmt.Sprintf("date=$%d", len(args)))
	}
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY date, time`
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return s.collectReservations(rows)
}

func (s *PostgresStorage) UpdateReservationStatus(ctx context.Context, id int64, status reservation.Status) error {
	_, err := s.db.ExecContext(ctx, `UPDATE reservations SET status=$1 WHERE id=$2`, status, id)
	return err
}

func (s *PostgresStorage) DeleteReservation(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM reservations WHERE id=$1`, id)
	return err
}

func (s *PostgresStorage) UpcomingReservations(ctx context.Context, fromDate string, limit int) ([]reservation.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations WHERE date >= $1 ORDER BY date, time LIMIT $2`
	rows, err := s.db.QueryContext(ctx, q, fromDate, limit)
	if err != nil {
		return nil, err
	}
	return s.collectReservations(rows)
}

// ---------------- contacts ----------------

func (s *PostgresStorage) CreateContact(ctx context.Context, c *contact.Contact) error {
	q := `INSERT INTO contacts (name,email,message,status,created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id`
	return s.db.QueryRowContext(ctx, q, c.Name, c.Email, c.Message, c.Status, c.CreatedAt).Scan(&c.ID)
}

func (s *PostgresStorage) FindContactByID(ctx context.Context, id int64) (*contact.Contact, error) {
	var c contact.Contact
	q := `SELECT id,name,email,message,status,created_at FROM contacts WHERE id=$1`
	err := s.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStorage) collectContacts(rows *sql.Rows) ([]contact.Contact, error) {
	defer rows.Close()
	var out []contact.Contact
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) ListContacts(ctx context.Context) ([]contact.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,name,email,message,status,created_at FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return s.collectContacts(rows)
}

func (s *PostgresStorage) DeleteContact(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	return err
}

func (s *PostgresStorage) RecentContacts(ctx context.Context, limit int) ([]contact.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,name,email,message,status,created_at FROM contacts ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return s.collectContacts(rows)
}
