package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/parasuram-clad/hrsuite-core/identity"
	"github.com/parasuram-clad/hrsuite-core/idp"
	idprepofakes "github.com/parasuram-clad/hrsuite-core/idp/repofakes"
	"github.com/parasuram-clad/hrsuite-core/internal/config"
	"github.com/parasuram-clad/hrsuite-core/server"
	"github.com/parasuram-clad/hrsuite-core/tenants"
	"github.com/parasuram-clad/hrsuite-core/tenants/postgres"
	tenantrepofakes "github.com/parasuram-clad/hrsuite-core/tenants/repofakes"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	tenantRepo, err := tenantStore(c)
	if err != nil {
		return err
	}
	directory := idprepofakes.NewFakeDirectoryRepo()
	if c.GetEnv() == "DEV" {
		if err := seedDevDirectory(directory, tenantRepo); err != nil {
			return fmt.Errorf("seedDevDirectory: %w", err)
		}
	}

	handler, err := server.New(c, tenantRepo, directory)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	srv := &http.Server{Addr: c.GetPort(), Handler: handler}
	go listenAndServe(srv)
	waitForStopSignal()
	returnError = shutdown(srv)
	return returnError
}

// tenantStore picks Postgres when DATABASE_URL is set, otherwise the
// in-memory dev store.
func tenantStore(c config.Config) (tenants.Repo, error) {
	url := c.GetDatabaseURL()
	if url == "" {
		return tenantrepofakes.NewFakeTenantRepo(), nil
	}
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	return postgres.NewStore(db), nil
}

// seedDevDirectory creates a local admin login and demo company so a fresh
// checkout is immediately usable.
func seedDevDirectory(directory *idprepofakes.FakeDirectoryRepo, tenantRepo tenants.Repo) error {
	hash, err := idp.HashPassword("ChangeMe123")
	if err != nil {
		return err
	}
	admin := identity.Identity{
		ID:    "dev-admin",
		Name:  "Dev Admin",
		Email: "admin@localhost",
		Role:  identity.RoleAdmin,
	}
	if err := directory.Upsert(context.Background(), &idp.Account{Identity: admin, PasswordHash: hash}); err != nil {
		return err
	}
	if fake, ok := tenantRepo.(*tenantrepofakes.FakeTenantRepo); ok {
		fake.Seed(&tenants.Tenant{ID: "demo", Name: "Demo Company"}, admin.ID)
	}
	log.Printf("Dev login: admin@localhost / ChangeMe123\n")
	return nil
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
