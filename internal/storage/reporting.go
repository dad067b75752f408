package storage

import "restaurant-pos/internal/domain"

func (r *PostgresRepository) InsertNotification(n *domain.Notification) error {
	return r.DB.QueryRow(`
		INSERT INTO notifications (order_id, customer_id, notification_type, channel, recipient, message)
		VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6)
		RETURNING id, created_at
	`, n.OrderID, n.CustomerID, n.Type, n.Channel, n.Recipient, n.Message).
		Scan(&n.ID, &n.CreatedAt)
}

func (r *PostgresRepository) NotificationsForOrder(orderID, limit int) ([]domain.Notification, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, COALESCE(customer_id, 0), notification_type, channel,
			COALESCE(recipient, ''), message, created_at
		FROM notifications
		WHERE order_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, orderID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.OrderID, &n.CustomerID, &n.Type, &n.Channel,
			&n.Recipient, &n.Message, &n.CreatedAt); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// OrderContact resolves who to notify about an order. Account contact data
// wins over the snapshot captured at order time.
func (r *PostgresRepository) OrderContact(orderID int) (*domain.OrderContact, error) {
	var c domain.OrderContact
	err := r.DB.QueryRow(`
		SELECT o.id, o.order_number, COALESCE(o.user_id, 0),
			COALESCE(u.name, o.customer_name, ''),
			COALESCE(u.email, ''),
			COALESCE(u.phone, o.customer_phone, '')
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		WHERE o.id = $1
	`, orderID).Scan(&c.OrderID, &c.OrderNumber, &c.CustomerID, &c.Name, &c.Email, &c.Phone)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) MarkPaid(orderID int) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.DB.QueryRow(`
		UPDATE orders
		SET payment_status = 'completed', updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING `+orderColumns, orderID), &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) InsertTransaction(t *domain.Transaction) error {
	return r.DB.QueryRow(`
		INSERT INTO transactions (order_id, amount, payment_method, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, t.OrderID, t.Amount, t.PaymentMethod, t.Status).
		Scan(&t.ID, &t.CreatedAt)
}

func (r *PostgresRepository) TodaySales() (*domain.SalesSummary, error) {
	var s domain.SalesSummary
	err := r.DB.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(total), 0),
			COALESCE(AVG(total), 0),
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0)
		FROM orders
		WHERE created_at::date = CURRENT_DATE
	`).Scan(&s.TotalOrders, &s.TotalRevenue, &s.AverageOrderValue, &s.CompletedOrders)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) OrderTypeCounts() (map[string]int, error) {
	rows, err := r.DB.Query(`SELECT order_type, COUNT(*) FROM orders GROUP BY order_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var orderType string
		var count int
		if err := rows.Scan(&orderType, &count); err != nil {
			continue
		}
		counts[orderType] = count
	}
	return counts, nil
}

func (r *PostgresRepository) TopProducts(limit int) ([]domain.TopProduct, error) {
	rows, err := r.DB.Query(`
		SELECT p.id, p.name, COALESCE(SUM(oi.quantity), 0) AS sales,
			COALESCE(SUM(oi.total_price), 0) AS revenue
		FROM products p
		JOIN order_items oi ON p.id = oi.product_id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status <> 'cancelled'
		GROUP BY p.id, p.name
		ORDER BY sales DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.TopProduct{}
	for rows.Next() {
		var p domain.TopProduct
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Sales, &p.Revenue); err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// TopProductStat fills name and lifetime revenue for a single product,
// used by the redis-backed top list.
func (r *PostgresRepository) TopProductStat(productID int) (string, float64, error) {
	var name string
	var revenue float64
	err := r.DB.QueryRow(`
		SELECT p.name, COALESCE(SUM(oi.total_price), 0)
		FROM products p
		LEFT JOIN order_items oi ON p.id = oi.product_id
		WHERE p.id = $1
		GROUP BY p.name
	`, productID).Scan(&name, &revenue)
	return name, revenue, err
}
