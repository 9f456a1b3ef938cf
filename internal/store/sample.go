package store

import (
	"fmt"
	"time"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/errs"
	"github.com/grupo1/reclamos-backend/internal/models"
)

// SampleData is the demo set loaded by the seed command and the mock store.
// Complaints reference customers, categories and employees by slice index.
func SampleData() dto.SampleData {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	return dto.SampleData{
		Categories: []models.Category{
			{Name: "Producto Dañado"},
			{Name: "Envío Incorrecto"},
			{Name: "Problema de Calidad"},
			{Name: "Error de Facturación"},
			{Name: "Retraso en Entrega"},
		},
		Customers: []models.Customer{
			{FullName: "Juan Pérez", Email: "juan.perez@email.com", Address: "Calle Principal 123"},
			{FullName: "María González", Email: "maria.gonzalez@email.com", Address: "Avenida Central 456"},
			{FullName: "Carlos Rodríguez", Email: "carlos.rodriguez@email.com", Address: "Plaza Mayor 789"},
			{FullName: "Ana Martínez", Email: "ana.martinez@email.com", Address: "Calle Secundaria 321"},
			{FullName: "Luis Fernández", Email: "luis.fernandez@email.com"},
			{FullName: "Elena Torres", Email: "elena.torres@email.com", Address: "Urbanización Norte 654"},
		},
		Employees: []dto.SampleEmployee{
			{FullName: "Pedro Admin", Email: "pedro.admin@empresa.com", Category: index(0)},
			{FullName: "Sofía Soporte", Email: "sofia.soporte@empresa.com", Category: index(1)},
			{FullName: "Roberto Gestor", Email: "roberto.gestor@empresa.com", Category: index(2)},
		},
		Complaints: []dto.SampleComplaint{
			{
				Customer: 0, Category: 0, Assignee: index(0),
				Description: "El producto llegó dañado y no coincide con la descripción del sitio web.",
				RecordedAt:  at("2025-11-08T10:30:00Z"),
				Status:      models.StatusPending,
			},
			{
				Customer: 1, Category: 1, Assignee: index(1),
				Description: "Nunca recibí mi pedido a pesar de que el tracking dice que fue entregado.",
				RecordedAt:  at("2025-11-07T14:20:00Z"),
				Status:      models.StatusInProgress,
			},
			{
				Customer: 2, Category: 1, Assignee: index(1),
				Description: "La talla del producto no es la correcta. Pedí una talla L y me enviaron una M.",
				RecordedAt:  at("2025-11-06T09:15:00Z"),
				Status:      models.StatusResolved,
			},
			{
				Customer: 3, Category: 2,
				Description: "El color del artículo no coincide con las fotos mostradas en el sitio.",
				RecordedAt:  at("2025-11-09T16:45:00Z"),
				Status:      models.StatusPending,
			},
			{
				Customer: 4, Category: 2, Assignee: index(2),
				Description: "El producto tiene defectos de fabricación. La cremallera está rota.",
				RecordedAt:  at("2025-11-05T11:00:00Z"),
				Status:      models.StatusResolved,
			},
			{
				Customer: 5, Category: 1, Assignee: index(1),
				Description: "Mi pedido llegó incompleto. Faltan 2 artículos de los 5 que ordené.",
				RecordedAt:  at("2025-11-08T13:30:00Z"),
				Status:      models.StatusInProgress,
			},
		},
	}
}

func index(i int) *int { return &i }

// validateSample checks every index in data points at an existing row.
func validateSample(data dto.SampleData) error {
	inRange := func(i *int, n int) bool { return i == nil || (*i >= 0 && *i < n) }

	for i, e := range data.Employees {
		if !inRange(e.Category, len(data.Categories)) {
			return errs.NewValidationError(fmt.Sprintf("employee %d: unknown category", i))
		}
	}
	for i, c := range data.Complaints {
		if !inRange(&c.Customer, len(data.Customers)) {
			return errs.NewValidationError(fmt.Sprintf("complaint %d: unknown customer", i))
		}
		if !inRange(&c.Category, len(data.Categories)) {
			return errs.NewValidationError(fmt.Sprintf("complaint %d: unknown category", i))
		}
		if !inRange(c.Assignee, len(data.Employees)) {
			return errs.NewValidationError(fmt.Sprintf("complaint %d: unknown assignee", i))
		}
		if !models.ValidStatus(c.Status) {
			return errs.NewValidationError(fmt.Sprintf("complaint %d: unknown estado %q", i, c.Status))
		}
	}
	return nil
}
