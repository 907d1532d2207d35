// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)
)

var recordHeaders = []string{"ID", "TITLE", "LOGIN", "URL", "FAVORITE"}

// recordsTable renders records as a bordered table. Passwords are never shown.
func recordsTable(records []models.SecretRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		url := ""
		if r.URL != nil {
			url = *r.URL
		}
		favorite := ""
		if r.Favorite {
			favorite = "yes"
		}
		rows = append(rows, []string{r.ID, r.Title, r.Username, url, favorite})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(recordHeaders...).
		Rows(rows...).
		Render()
}
