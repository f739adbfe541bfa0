package comments

import "time"

// Comment es una anotación de texto libre sobre un paciente.
// Nunca se edita: se crea y, solo por su autor, se elimina.
type Comment struct {
	ID           string
	PatientID    string
	AuthorUserID string

	Content string

	CreatedAt time.Time
}

// Author es la identidad del autor tal como vive en la tabla users
// (tabla externa al registro; aquí solo se lee).
type Author struct {
	ID    string
	Name  string
	Email string
}

// CommentWithAuthor es lo que devuelve el listado por paciente:
// el comentario más la identidad de quien lo escribió.
type CommentWithAuthor struct {
	Comment
	Author Author
}
