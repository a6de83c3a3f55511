package dao

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("dockertest.NewPool -> %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("pool.Client.Ping -> %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=mela",
			"POSTGRES_PASSWORD=mela",
			"POSTGRES_DB=mela_test",
			"listen_addresses='*'",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("pool.RunWithOptions -> %v", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%v user=mela password=mela dbname=mela_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}
		sqlDB, err := testDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("pool.Retry -> %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("InitTables -> %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("pool.Purge -> %v", err)
	}

	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
}

func TestStallDAO(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	d := NewStallDAO(testDB)

	stall, err := d.Insert(ctx, Stall{
		CounterName:     "Dosa Corner",
		ParticipantName: "Anitha",
		Mobile:          "9876543210",
		RegistrationFee: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	require.NotZero(t, stall.ID)
	defer func() {
		assert.NoError(t, d.Delete(ctx, stall.ID))
	}()

	t.Run("find by credentials", func(t *testing.T) {
		found, err := d.FindByCredentials(ctx, "Dosa Corner", "9876543210")
		require.NoError(t, err)
		assert.Equal(t, stall.ID, found.ID)

		_, err = d.FindByCredentials(ctx, "Dosa Corner", "0000000000")
		assert.ErrorIs(t, err, ErrStallNotFound)
	})

	t.Run("update", func(t *testing.T) {
		stall.Verified = true
		updated, err := d.Update(ctx, stall)
		require.NoError(t, err)
		assert.True(t, updated.Verified)
	})

	t.Run("products scoped to the stall", func(t *testing.T) {
		product, err := d.InsertProduct(ctx, Product{
			StallID:        stall.ID,
			Name:           "Masala Dosa",
			CostPrice:      decimal.NewFromInt(50),
			SellingPrice:   decimal.NewFromInt(60),
			CommissionRate: decimal.NewFromInt(20),
		})
		require.NoError(t, err)

		products, err := d.FindProductsByStallID(ctx, stall.ID)
		require.NoError(t, err)
		assert.Len(t, products, 1)

		require.NoError(t, d.DeleteProductsByStallID(ctx, stall.ID))

		_, err = d.FindProductByID(ctx, product.ID)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestBillingDAOSerialNumbers(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	stalls := NewStallDAO(testDB)
	bills := NewBillingDAO(testDB)

	stall, err := stalls.Insert(ctx, Stall{
		CounterName:     "Chai Point",
		ParticipantName: "Ravi",
		Mobile:          "9876500000",
		RegistrationFee: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, bills.DeleteByStallID(ctx, stall.ID))
		assert.NoError(t, stalls.Delete(ctx, stall.ID))
	}()

	first, err := bills.Insert(ctx, Bill{
		StallID:       stall.ID,
		Items:         `[{"name":"Chai","quantity":2,"price":"20"}]`,
		Subtotal:      decimal.NewFromInt(40),
		Total:         decimal.NewFromInt(40),
		Status:        "pending",
		ReceiptNumber: "RCT-TESTDAO1",
	})
	require.NoError(t, err)

	second, err := bills.Insert(ctx, Bill{
		StallID:       stall.ID,
		Items:         `[{"name":"Chai","quantity":1,"price":"20"}]`,
		Subtotal:      decimal.NewFromInt(20),
		Total:         decimal.NewFromInt(20),
		Status:        "pending",
		ReceiptNumber: "RCT-TESTDAO2",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, first.SerialNumber)
	assert.Equal(t, 2, second.SerialNumber)
}
