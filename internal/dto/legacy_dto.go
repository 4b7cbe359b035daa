package dto

import "time"

type SupplierRequest struct {
	Name          string `json:"name"           validate:"required,max=100"`
	ContactPerson string `json:"contact_person" validate:"max=100"`
	Email         string `json:"email"          validate:"omitempty,email,max=120"`
	Phone         string `json:"phone"          validate:"max=20"`
	Address       string `json:"address"`
	Speciality    string `json:"speciality"     validate:"max=200"`
	Status        string `json:"status"         validate:"max=20"`
}

type SupplierResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Speciality    string    `json:"speciality"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ClientRequest struct {
	Name          string `json:"name"           validate:"required,max=100"`
	ContactPerson string `json:"contact_person" validate:"max=100"`
	Email         string `json:"email"          validate:"omitempty,email,max=120"`
	Phone         string `json:"phone"          validate:"max=20"`
	Address       string `json:"address"`
	Company       string `json:"company"        validate:"max=100"`
	Status        string `json:"status"         validate:"max=20"`
}

type ClientResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Company       string    `json:"company"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
