package model

type Restaurant struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}
