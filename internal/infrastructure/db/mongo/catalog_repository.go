package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

const collectionServices = "services"

type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionServices)}
}

type serviceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Icon        string             `bson:"icon"`
	Price       int64              `bson:"price"`
}

func (d serviceDoc) toDomain() domain.Service {
	return domain.Service{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		Price:       d.Price,
	}
}

// ListServices returns the full catalog in store order.
func (r *CatalogRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Service
	for cur.Next(ctx) {
		var doc serviceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// defaultCatalog is the catalog installed on first boot against an empty
// store.
var defaultCatalog = []serviceDoc{
	{Name: "Alarma Monitoreada", Description: "Central de alarma conectada 24/7", Icon: "bell-ring", Price: 29990},
	{Name: "Circuito CCTV", Description: "4 camaras con grabacion en la nube", Icon: "video", Price: 49990},
	{Name: "Guardia Presencial", Description: "Guardia certificado en turno nocturno", Icon: "shield", Price: 399990},
	{Name: "Ronda Movil", Description: "Patrullaje perimetral programado", Icon: "car", Price: 89990},
	{Name: "Boton de Panico", Description: "Dispositivo SOS con respuesta prioritaria", Icon: "siren", Price: 19990},
}

// SeedIfEmpty installs the default catalog when the services collection has
// no documents. Existing catalogs are never touched.
func (r *CatalogRepository) SeedIfEmpty(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count services: %w", err)
	}
	if n > 0 {
		return nil
	}

	docs := make([]interface{}, len(defaultCatalog))
	for i, d := range defaultCatalog {
		docs[i] = d
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	return nil
}
