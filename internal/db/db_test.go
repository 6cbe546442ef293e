package db_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"

	"billest/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Test struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex"`
	Team     *int
}

var _ = Describe("Database on postgres dialect", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{DisableAutomaticPing: true})
		Expect(err).NotTo(HaveOccurred())

		testDB = db.Wrap(gormDB)
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("FindWhere", func() {
		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return a wrapped error", func() {
				var results []Test
				err := testDB.FindWhere(ctx, &results, nil, map[string]any{"team": nil})
				Expect(err).To(MatchError(ContainSubstring("find records")))
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("CountWhere", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE .*team.* IS NULL`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		})

		It("should translate a nil value into IS NULL", func() {
			count, err := testDB.CountWhere(ctx, &Test{}, map[string]any{"team": nil})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(3)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})

var _ = Describe("Database on sqlite", func() {
	var (
		testDB *db.GormDB
		ctx    context.Context
		team   int
	)

	createTests := db.Migration{
		Version: 1,
		Name:    "create_tests",
		Up: func(tx *gorm.DB) error {
			return tx.Migrator().CreateTable(&Test{})
		},
	}

	BeforeEach(func() {
		ctx = context.Background()
		team = 7

		var err error
		testDB, err = db.Open(db.Options{
			Driver: db.DriverSQLite,
			DSN:    filepath.Join(GinkgoT().TempDir(), "test.db"),
		})
		Expect(err).NotTo(HaveOccurred())

		applied, err := testDB.Migrate(ctx, createTests)
		Expect(err).NotTo(HaveOccurred())
		Expect(applied).To(Equal([]int{1}))
	})

	AfterEach(func() {
		Expect(testDB.Close()).To(Succeed())
	})

	Describe("Insert", func() {
		It("assigns ids and reports duplicates", func() {
			first := Test{Username: "alice"}
			Expect(testDB.Insert(ctx, &first)).To(Succeed())
			Expect(first.ID).To(Equal(uint(1)))

			err := testDB.Insert(ctx, &Test{Username: "alice"})
			Expect(err).To(MatchError(db.ErrDuplicate))
		})

		It("releases the connection afterwards", func() {
			Expect(testDB.Insert(ctx, &Test{Username: "bob"})).To(Succeed())
			stats := db.Stats(testDB)
			Expect(stats.InUse).To(BeZero())
			Expect(stats.Idle).To(BeZero())
		})
	})

	Describe("FindWhere, CountWhere and DeleteWhere", func() {
		BeforeEach(func() {
			Expect(testDB.Insert(ctx, &Test{Username: "a"})).To(Succeed())
			Expect(testDB.Insert(ctx, &Test{Username: "b", Team: &team})).To(Succeed())
			Expect(testDB.Insert(ctx, &Test{Username: "c"})).To(Succeed())
		})

		It("filters on null columns and orders the result", func() {
			var results []Test
			order := clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}
			Expect(testDB.FindWhere(ctx, &results, order, map[string]any{"team": nil})).To(Succeed())
			Expect(results).To(HaveLen(2))
			Expect(results[0].Username).To(Equal("c"))
			Expect(results[1].Username).To(Equal("a"))

			count, err := testDB.CountWhere(ctx, &Test{}, map[string]any{"team": team})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("deletes only matching rows", func() {
			affected, err := testDB.DeleteWhere(ctx, &Test{}, map[string]any{"team": nil})
			Expect(err).NotTo(HaveOccurred())
			Expect(affected).To(Equal(int64(2)))

			affected, err = testDB.DeleteWhere(ctx, &Test{}, map[string]any{"id": 999})
			Expect(err).NotTo(HaveOccurred())
			Expect(affected).To(BeZero())

			count, err := testDB.CountWhere(ctx, &Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})
	})

	Describe("Conn", func() {
		It("returns the callback error and still releases the connection", func() {
			fakeErr := errors.New("fake error")
			err := testDB.Conn(ctx, func(tx *gorm.DB) error {
				return fakeErr
			})
			Expect(err).To(MatchError(fakeErr))
			Expect(db.Stats(testDB).InUse).To(BeZero())
		})
	})

	Describe("Migrate", func() {
		It("skips versions already recorded", func() {
			applied, err := testDB.Migrate(ctx, createTests)
			Expect(err).NotTo(HaveOccurred())
			Expect(applied).To(BeEmpty())
		})

		It("applies new versions in order", func() {
			var order []int
			step := func(v int) db.Migration {
				return db.Migration{Version: v, Name: "step", Up: func(tx *gorm.DB) error {
					order = append(order, v)
					return nil
				}}
			}

			applied, err := testDB.Migrate(ctx, step(3), createTests, step(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(applied).To(Equal([]int{2, 3}))
			Expect(order).To(Equal([]int{2, 3}))
		})

		It("does not record a failing version", func() {
			broken := db.Migration{Version: 2, Name: "broken", Up: func(tx *gorm.DB) error {
				return errors.New("boom")
			}}

			_, err := testDB.Migrate(ctx, createTests, broken)
			Expect(err).To(MatchError(ContainSubstring("migration 2 (broken): boom")))

			var recorded []db.SchemaMigration
			Expect(testDB.FindWhere(ctx, &recorded, nil)).To(Succeed())
			Expect(recorded).To(HaveLen(1))
			Expect(recorded[0].Version).To(Equal(1))
		})
	})
})

var _ = Describe("Open", func() {
	It("rejects unknown drivers", func() {
		_, err := db.Open(db.Options{Driver: "oracle", DSN: "x"})
		Expect(err).To(MatchError(db.ErrUnsupportedDriver))
	})
})
