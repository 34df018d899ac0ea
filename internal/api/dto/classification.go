package dto

import "f1-standings-service/internal/domain"

type ClassificationResponse struct {
	Data []domain.Standing `json:"data"`
}

type InfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
