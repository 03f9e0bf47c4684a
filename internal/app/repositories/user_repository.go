package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
	"github.com/campushire/placement-portal/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = "id, username, email, full_name, role, college_id, department, is_active, is_approved, created_at"

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.Role,
		&user.CollegeID,
		&user.Department,
		&user.IsActive,
		&user.IsApproved,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. Duplicate usernames within the college and
// duplicate emails across colleges are rejected by unique indexes and mapped
// to the matching conflict error.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, full_name, role, college_id, department, is_active, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.FullName, user.Role,
		user.CollegeID, user.Department, user.IsActive, user.IsApproved,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_college_username_key") {
			return apperrors.ErrUsernameExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID within a college
func (r *UserRepository) GetByID(ctx context.Context, id, collegeID string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 AND college_id = $2`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id, collegeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username within a college
func (r *UserRepository) GetByUsername(ctx context.Context, username, collegeID string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1 AND college_id = $2`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, username, collegeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email within a college
func (r *UserRepository) GetByEmail(ctx context.Context, email, collegeID string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 AND college_id = $2`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email, collegeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetAll retrieves users of a college with optional role filtering and pagination
func (r *UserRepository) GetAll(ctx context.Context, collegeID string, role *models.RoleType, page, pageSize int) ([]models.User, int64, error) {
	whereCondition := squirrel.And{squirrel.Eq{"college_id": collegeID}}
	if role != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"role": *role})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("users").Where(whereCondition).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count users query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	if totalItems == 0 {
		return []models.User{}, 0, nil
	}

	listSql, listArgs, err := r.sb.Select(
		"id", "username", "email", "full_name", "role", "college_id",
		"department", "is_active", "is_approved", "created_at",
	).
		From("users").
		Where(whereCondition).
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, totalItems, nil
}

// SetApproval updates the approval flag of a user within a college
func (r *UserRepository) SetApproval(ctx context.Context, id, collegeID string, approved bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET is_approved = $1 WHERE id = $2 AND college_id = $3`,
		approved, id, collegeID)
	if err != nil {
		return fmt.Errorf("error updating user approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetActive updates the activation flag of a user within a college
func (r *UserRepository) SetActive(ctx context.Context, id, collegeID string, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET is_active = $1 WHERE id = $2 AND college_id = $3`,
		active, id, collegeID)
	if err != nil {
		return fmt.Errorf("error updating user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user within a college. The credential row goes with it
// through the foreign key cascade.
func (r *UserRepository) Delete(ctx context.Context, id, collegeID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1 AND college_id = $2`, id, collegeID)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// CountByCollege returns the number of users belonging to a college
func (r *UserRepository) CountByCollege(ctx context.Context, collegeID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE college_id = $1`, collegeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}
