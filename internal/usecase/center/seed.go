package center

import (
	"context"

	"github.com/vitalcare/clinic-api/internal/audit"
	"github.com/vitalcare/clinic-api/internal/models"
	"github.com/vitalcare/clinic-api/internal/navarra"
)

// seedRecordLimit limita cada pasada a cinco registros del feed. Huele a
// resto de pruebas, pero se mantiene hasta que alguien confirme que hay
// que importar el feed completo.
const seedRecordLimit = 5

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]navarra.Record, error)
}

type Repository interface {
	CenterExists(ctx context.Context, name, address string) (bool, error)
	CreateCenter(ctx context.Context, c *models.Center) error
}

type SeedCenters struct {
	fetcher Fetcher
	repo    Repository
	audit   *audit.Dispatcher
}

func NewSeedCenters(
	fetcher Fetcher,
	repo Repository,
	audit *audit.Dispatcher,
) *SeedCenters {
	return &SeedCenters{
		fetcher: fetcher,
		repo:    repo,
		audit:   audit,
	}
}

// Execute importa el feed: se queda con los primeros registros, salta los
// que ya existen por (name, address) e inserta el resto. Devuelve solo lo
// insertado en esta llamada.
func (uc *SeedCenters) Execute(
	ctx context.Context,
	url string,
	requestID string,
) ([]models.Center, error) {

	records, err := uc.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if len(records) > seedRecordLimit {
		records = records[:seedRecordLimit]
	}

	created := make([]models.Center, 0, len(records))
	for _, rec := range records {
		exists, err := uc.repo.CenterExists(ctx, rec.Name, rec.Address)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		c := models.Center{
			Name:       rec.Name,
			Address:    rec.Address,
			ZipCode:    rec.ZipCode,
			Phone:      rec.Phone,
			TypeCenter: rec.TypeCenter,
		}

		if err := uc.repo.CreateCenter(ctx, &c); err != nil {
			return nil, err
		}

		created = append(created, c)
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: audit.ActorSystem,
		Action:    "centers_seeded",
		Entity:    "center",
		RequestID: requestID,
		Metadata: map[string]any{
			"inserted": len(created),
		},
	})

	return created, nil
}
