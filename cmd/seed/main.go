// seed puebla una base de datos con una company demo y los ítems de un CSV
// (columnas: name,quantity,barcode,low_stock_threshold; las dos últimas
// opcionales). Pasa -latin1 para CSV exportados por Excel en Windows-1252.
//
// Uso: go run ./cmd/seed -csv demo_items.csv [-latin1] [-company "Mi Tienda"]
//
// Crea la company con su admin vía el flujo de registro real, de modo que los
// ítems sembrados quedan con sus actividades "created" en el historial.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/stocktrackhq/stocktrack-api/internal/application/auth"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/application/inventory"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/infrastructure/postgres"
	"github.com/stocktrackhq/stocktrack-api/pkg/config"
	"github.com/stocktrackhq/stocktrack-api/pkg/logger"
)

func main() {
	csvPath := flag.String("csv", "demo_items.csv", "ruta del CSV de ítems")
	latin1 := flag.Bool("latin1", false, "decodificar el CSV como Windows-1252 (export de Excel)")
	companyName := flag.String("company", "Demo StockTrack", "nombre de la company demo")
	adminName := flag.String("admin", "Demo Admin", "nombre del admin demo")
	email := flag.String("email", "demo@stocktrack.local", "email del admin demo")
	password := flag.String("password", "demo1234", "password del admin demo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, userRepo, companyRepo)

	// Company demo vía el flujo de registro real (code autogenerado, admin activo)
	session, err := authUC.RegisterCompany(ctx, dto.RegisterCompanyRequest{
		CompanyName: *companyName,
		Name:        *adminName,
		Email:       *email,
		Password:    *password,
	})
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			log.Fatal().Str("email", *email).Msg("el admin demo ya existe; borra la company o usa otro email")
		}
		log.Fatal().Err(err).Msg("registrar company demo")
	}
	log.Info().
		Str("company", session.Company.Name).
		Str("code", session.Company.Code).
		Msg("company demo creada")

	rows, err := readItemsCSV(*csvPath, *latin1)
	if err != nil {
		log.Fatal().Err(err).Str("csv", *csvPath).Msg("leer CSV de ítems")
	}

	seeded, skipped := 0, 0
	for _, row := range rows {
		_, err := itemUC.Create(ctx, session.Company.ID, session.User.ID, row)
		if err != nil {
			if err == domain.ErrDuplicate {
				log.Warn().Str("item", row.Name).Msg("barcode duplicado, ítem omitido")
				skipped++
				continue
			}
			log.Fatal().Err(err).Str("item", row.Name).Msg("crear ítem")
		}
		seeded++
	}

	log.Info().
		Int("seeded", seeded).
		Int("skipped", skipped).
		Str("login", *email).
		Msg("seed completado")
}

// readItemsCSV parsea el CSV de ítems. La primera fila es cabecera y se salta.
func readItemsCSV(path string, latin1 bool) ([]dto.CreateItemRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	if latin1 {
		src = transform.NewReader(f, charmap.Windows1252.NewDecoder())
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1 // columnas opcionales al final
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("el CSV no tiene filas de datos")
	}

	out := make([]dto.CreateItemRequest, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 2 || rec[0] == "" {
			return nil, fmt.Errorf("fila %d: se esperan al menos name y quantity", i+2)
		}
		qty, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("fila %d: quantity inválida %q", i+2, rec[1])
		}
		item := dto.CreateItemRequest{Name: rec[0], Quantity: qty}
		if len(rec) > 2 {
			item.Barcode = rec[2]
		}
		if len(rec) > 3 && rec[3] != "" {
			t, err := strconv.Atoi(rec[3])
			if err != nil {
				return nil, fmt.Errorf("fila %d: threshold inválido %q", i+2, rec[3])
			}
			item.LowStockThreshold = &t
		}
		out = append(out, item)
	}
	return out, nil
}
