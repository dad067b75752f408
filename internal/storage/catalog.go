package storage

import "restaurant-pos/internal/domain"

func (r *PostgresRepository) CreateProduct(p *domain.Product) error {
	return r.DB.QueryRow(`
		INSERT INTO products (name, description, category, price, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id, is_active, created_at, updated_at
	`, p.Name, p.Description, p.Category, p.Price, p.ImageURL).
		Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostgresRepository) ListProducts() ([]domain.Product, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), COALESCE(category, ''), price,
			COALESCE(image_url, ''), is_active, created_at, updated_at
		FROM products
		WHERE is_active = true
		ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
			&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *PostgresRepository) GetProduct(id int) (*domain.Product, error) {
	var p domain.Product
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), COALESCE(category, ''), price,
			COALESCE(image_url, ''), is_active, created_at, updated_at
		FROM products
		WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
			&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct applies a partial update; empty fields keep their value.
func (r *PostgresRepository) UpdateProduct(p *domain.Product) error {
	return r.DB.QueryRow(`
		UPDATE products
		SET name = COALESCE(NULLIF($1, ''), name),
			description = COALESCE(NULLIF($2, ''), description),
			category = COALESCE(NULLIF($3, ''), category),
			price = CASE WHEN $4 > 0 THEN $4 ELSE price END,
			image_url = COALESCE(NULLIF($5, ''), image_url),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING id, name, COALESCE(description, ''), COALESCE(category, ''), price,
			COALESCE(image_url, ''), is_active, created_at, updated_at
	`, p.Name, p.Description, p.Category, p.Price, p.ImageURL, p.ID).
		Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
			&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostgresRepository) CountProducts() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

// AdjustStock applies a signed delta to quantity_on_hand. No floor is
// enforced; stock can go negative.
func (r *PostgresRepository) AdjustStock(productID, delta int) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.DB.QueryRow(`
		UPDATE inventory
		SET quantity_on_hand = quantity_on_hand + $1, updated_at = CURRENT_TIMESTAMP
		WHERE product_id = $2
		RETURNING id, product_id, quantity_on_hand, quantity_reserved,
			minimum_stock, reorder_point, updated_at
	`, delta, productID).
		Scan(&item.ID, &item.ProductID, &item.QuantityOnHand, &item.QuantityReserved,
			&item.MinimumStock, &item.ReorderPoint, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) LowStock() ([]domain.InventoryItem, error) {
	rows, err := r.DB.Query(`
		SELECT i.id, i.product_id, p.name, COALESCE(p.category, ''),
			i.quantity_on_hand, i.quantity_reserved, i.minimum_stock,
			i.reorder_point, i.updated_at
		FROM inventory i
		JOIN products p ON i.product_id = p.id
		WHERE i.quantity_on_hand <= i.minimum_stock
		ORDER BY i.quantity_on_hand ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.ProductName, &item.Category,
			&item.QuantityOnHand, &item.QuantityReserved, &item.MinimumStock,
			&item.ReorderPoint, &item.UpdatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
