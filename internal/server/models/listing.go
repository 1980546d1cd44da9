package models

import "time"

// Listing is one donation offer. The owning account is fixed at creation;
// only the archived flag ever changes afterwards, and a listing can be
// deleted only while archived.
type Listing struct {
	ID              int64   `json:"id"`
	NomeLocal       string  `json:"nome_local"`
	Itens           string  `json:"itens"`
	HorarioRetirada string  `json:"horario_retirada"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`

	// Optional structured address. Nil means the column is NULL.
	Cep    *string `json:"cep,omitempty"`
	Rua    *string `json:"rua,omitempty"`
	Numero *string `json:"numero,omitempty"`
	Bairro *string `json:"bairro,omitempty"`
	Cidade *string `json:"cidade,omitempty"`

	Archived  bool  `json:"is_archived"`
	AccountID int64 `json:"-"`

	// AuthorName is the owner's display name, resolved by a join at read
	// time rather than stored on the row.
	AuthorName string `json:"author_nome,omitempty"`

	CreatedAt time.Time `json:"-"`
}
