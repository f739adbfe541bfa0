package postgres

import (
	"context"
	"database/sql"
	"strings"

	"patient-registry/internal/domain/comments"
)

type CommentsRepo struct {
	db *sql.DB
}

func NewCommentsRepo(db *sql.DB) *CommentsRepo {
	return &CommentsRepo{db: db}
}

func (r *CommentsRepo) Create(ctx context.Context, c comments.Comment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (id, patient_id, user_id, content, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		c.ID,
		c.PatientID,
		c.AuthorUserID,
		c.Content,
		c.CreatedAt,
	)
	return err
}

func (r *CommentsRepo) GetByID(ctx context.Context, id string) (comments.Comment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return comments.Comment{}, comments.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, patient_id, user_id, content, created_at
		FROM comments
		WHERE id = $1
	`, id)

	var c comments.Comment
	if err := row.Scan(&c.ID, &c.PatientID, &c.AuthorUserID, &c.Content, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return comments.Comment{}, comments.ErrNotFound
		}
		return comments.Comment{}, err
	}
	return c, nil
}

// ListByPatient trae los comentarios con la identidad del autor desde la
// tabla users (externa al registro; aquí solo se lee). LEFT JOIN por si el
// autor ya no existe: el comentario se muestra igual.
func (r *CommentsRepo) ListByPatient(ctx context.Context, patientID string) ([]comments.CommentWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			c.id, c.patient_id, c.user_id, c.content, c.created_at,
			COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.patient_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]comments.CommentWithAuthor, 0)
	for rows.Next() {
		var cw comments.CommentWithAuthor
		if err := rows.Scan(
			&cw.ID,
			&cw.PatientID,
			&cw.AuthorUserID,
			&cw.Content,
			&cw.CreatedAt,
			&cw.Author.Name,
			&cw.Author.Email,
		); err != nil {
			return nil, err
		}
		cw.Author.ID = cw.AuthorUserID
		out = append(out, cw)
	}

	return out, rows.Err()
}

func (r *CommentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return comments.ErrNotFound
	}
	return nil
}
