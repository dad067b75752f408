package storage

import "restaurant-pos/internal/domain"

func (r *PostgresRepository) CreateUser(u *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (name, email, password_hash, role, phone, is_active)
		VALUES ($1, $2, $3, 'customer', NULLIF($4, ''), true)
		RETURNING id, role, is_active, created_at, updated_at
	`, u.Name, u.Email, u.PasswordHash, u.Phone).
		Scan(&u.ID, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
}

func (r *PostgresRepository) UserByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRow(`
		SELECT id, name, email, COALESCE(phone, ''), password_hash, role, is_active,
			created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
			&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) UserByID(id int) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRow(`
		SELECT id, name, email, COALESCE(phone, ''), password_hash, role, is_active,
			created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
			&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) UpdateProfile(u *domain.User) error {
	return r.DB.QueryRow(`
		UPDATE users
		SET name = COALESCE(NULLIF($1, ''), name),
			phone = COALESCE(NULLIF($2, ''), phone),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING id, name, email, COALESCE(phone, ''), role, is_active,
			created_at, updated_at
	`, u.Name, u.Phone, u.ID).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.IsActive,
			&u.CreatedAt, &u.UpdatedAt)
}
