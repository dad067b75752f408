package storage

import (
	"database/sql"
	"strconv"

	"restaurant-pos/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const orderColumns = `id, order_number, order_type, status, subtotal, tax, discount, total,
	payment_status, COALESCE(payment_method, ''), COALESCE(customer_name, ''),
	COALESCE(customer_phone, ''), COALESCE(delivery_address, ''), COALESCE(notes, ''),
	COALESCE(user_id, 0), created_at, updated_at, completed_at`

func scanOrder(row interface{ Scan(...interface{}) error }, order *domain.Order) error {
	var completedAt sql.NullTime
	err := row.Scan(&order.ID, &order.OrderNumber, &order.OrderType, &order.Status,
		&order.Subtotal, &order.Tax, &order.Discount, &order.Total,
		&order.PaymentStatus, &order.PaymentMethod, &order.CustomerName,
		&order.CustomerPhone, &order.DeliveryAddress, &order.Notes,
		&order.UserID, &order.CreatedAt, &order.UpdatedAt, &completedAt)
	if err != nil {
		return err
	}
	if completedAt.Valid {
		order.CompletedAt = &completedAt.Time
	}
	return nil
}

// CreateOrder inserts the order row and its line items in one transaction.
// A failed item insert rolls the whole order back.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (
			order_number, order_type, status, subtotal, tax, discount, total,
			payment_status, payment_method, customer_name, customer_phone,
			delivery_address, notes, user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''),
			NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''), NULLIF($14, 0))
		RETURNING id, created_at, updated_at
	`, order.OrderNumber, order.OrderType, order.Status, order.Subtotal, order.Tax,
		order.Discount, order.Total, order.PaymentStatus, order.PaymentMethod,
		order.CustomerName, order.CustomerPhone, order.DeliveryAddress, order.Notes,
		order.UserID).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, order.ID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice).
			Scan(&item.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	// Join product names in for the response.
	items, err := r.orderItems(order.ID)
	if err == nil {
		order.Items = items
		order.ItemCount = len(items)
	}
	return nil
}

func (r *PostgresRepository) orderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT oi.id, oi.order_id, oi.product_id, COALESCE(p.name, ''),
			COALESCE(p.category, ''), oi.quantity, oi.unit_price, oi.total_price,
			COALESCE(p.image_url, ''), COALESCE(oi.special_instructions, '')
		FROM order_items oi
		LEFT JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.ProductCategory, &item.Quantity, &item.UnitPrice, &item.TotalPrice,
			&item.ImageURL, &item.SpecialInstructions); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// GetOrder looks an order up by numeric id or order number and loads its items.
func (r *PostgresRepository) GetOrder(id int, orderNumber string) (*domain.Order, error) {
	var order domain.Order
	var err error
	if id > 0 {
		err = scanOrder(r.DB.QueryRow(
			`SELECT `+orderColumns+` FROM orders WHERE id = $1 OR order_number = $2 LIMIT 1`,
			id, orderNumber), &order)
	} else {
		err = scanOrder(r.DB.QueryRow(
			`SELECT `+orderColumns+` FROM orders WHERE order_number = $1 LIMIT 1`,
			orderNumber), &order)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.orderItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	order.ItemCount = len(items)
	return &order, nil
}

func (r *PostgresRepository) ListOrders(status string, limit int) ([]domain.Order, error) {
	query := `
		SELECT o.id, o.order_number, o.order_type, o.status, o.subtotal, o.tax,
			o.discount, o.total, o.payment_status, COALESCE(o.payment_method, ''),
			COALESCE(o.customer_name, ''), COALESCE(o.customer_phone, ''),
			COALESCE(o.delivery_address, ''), COALESCE(o.notes, ''),
			o.created_at, o.updated_at, o.completed_at,
			COUNT(oi.id) AS item_count
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id`
	args := []interface{}{}
	if status != "" && status != "all" {
		query += ` WHERE o.status = $1`
		args = append(args, status)
	}
	query += `
		GROUP BY o.id
		ORDER BY o.created_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var completedAt sql.NullTime
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.OrderType, &order.Status,
			&order.Subtotal, &order.Tax, &order.Discount, &order.Total,
			&order.PaymentStatus, &order.PaymentMethod, &order.CustomerName,
			&order.CustomerPhone, &order.DeliveryAddress, &order.Notes,
			&order.CreatedAt, &order.UpdatedAt, &completedAt, &order.ItemCount); err != nil {
			continue
		}
		if completedAt.Valid {
			order.CompletedAt = &completedAt.Time
		}
		order.Items = []domain.OrderItem{}
		orders = append(orders, order)
	}
	return orders, nil
}

// Feed returns active orders for the kitchen display, most urgent first:
// ready before preparing before pending, then oldest first.
func (r *PostgresRepository) Feed(statuses []string, limit int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT o.id, o.order_number, o.order_type, o.status, o.total,
			o.created_at, o.updated_at, COALESCE(o.delivery_address, ''),
			COUNT(oi.id) AS item_count,
			COALESCE(string_agg(p.name, ', '), '') AS item_names
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id
		LEFT JOIN products p ON oi.product_id = p.id
		WHERE o.status = ANY($1)
		GROUP BY o.id
		ORDER BY
			CASE o.status
				WHEN 'ready' THEN 0
				WHEN 'preparing' THEN 1
				WHEN 'pending' THEN 2
				ELSE 3
			END,
			o.created_at ASC
		LIMIT $2
	`, pq.Array(statuses), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.OrderType, &order.Status,
			&order.Total, &order.CreatedAt, &order.UpdatedAt, &order.DeliveryAddress,
			&order.ItemCount, &order.ItemNames); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateStatus(orderID int, status string) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.DB.QueryRow(`
		UPDATE orders
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING `+orderColumns, status, orderID), &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetCompletedAt stamps completion in a second statement after the
// status write.
func (r *PostgresRepository) SetCompletedAt(orderID int) error {
	_, err := r.DB.Exec(
		`UPDATE orders SET completed_at = CURRENT_TIMESTAMP WHERE id = $1`, orderID)
	return err
}

func (r *PostgresRepository) LogStatusChange(orderID int, status string) error {
	_, err := r.DB.Exec(`
		INSERT INTO order_status_logs (order_id, status, changed_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
	`, orderID, status)
	return err
}

func (r *PostgresRepository) StatusSnapshot(id int, orderNumber string) (*domain.StatusSnapshot, error) {
	var snap domain.StatusSnapshot
	err := r.DB.QueryRow(`
		SELECT id, order_number, status, payment_status, updated_at
		FROM orders
		WHERE id = $1 OR order_number = $2
		LIMIT 1
	`, id, orderNumber).Scan(&snap.ID, &snap.OrderNumber, &snap.Status,
		&snap.PaymentStatus, &snap.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *PostgresRepository) OrdersForUser(userID, limit int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_number, order_type, status, total, payment_status,
			created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.OrderType, &order.Status,
			&order.Total, &order.PaymentStatus, &order.CreatedAt, &order.UpdatedAt); err != nil {
			continue
		}
		order.Items = []domain.OrderItem{}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) UserOrder(userID, orderID int) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.DB.QueryRow(
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND user_id = $2 LIMIT 1`,
		orderID, userID), &order)
	if err != nil {
		return nil, err
	}
	items, err := r.orderItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	order.ItemCount = len(items)
	return &order, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, string, error) {
	var qr []byte
	var orderNumber string
	err := r.DB.QueryRow(
		`SELECT qr_code, order_number FROM orders WHERE id = $1`, orderID).
		Scan(&qr, &orderNumber)
	if err != nil {
		return nil, "", err
	}
	return qr, orderNumber, nil
}
