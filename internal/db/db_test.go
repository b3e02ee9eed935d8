package db_test

import (
	"context"
	"database/sql"
	"errors"

	"todoer/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Note struct {
	ID    uint `gorm:"primaryKey"`
	Title string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"notes\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Note{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("InsertRecord", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "notes" \("title"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("groceries").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectCommit()
			})

			It("fills the generated primary key", func() {
				note := Note{Title: "groceries"}
				err := testDB.InsertRecord(context.Background(), &note)
				Expect(err).NotTo(HaveOccurred())
				Expect(note.ID).To(Equal(uint(7)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert violates a unique constraint", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "notes".*`).
					WillReturnError(gorm.ErrDuplicatedKey)
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				note := Note{Title: "groceries"}
				err := testDB.InsertRecord(context.Background(), &note)
				Expect(err).To(MatchError(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "notes" WHERE title = \$1 ORDER BY "notes"\."id" LIMIT \$2.*`).
					WithArgs("groceries", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
						AddRow(1, "groceries"))
			})

			It("should return the correct record", func() {
				var result Note
				err := testDB.GetOneBy(context.Background(), "title", "groceries", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Title).To(Equal("groceries"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "notes" WHERE title = \$1 ORDER BY "notes"\."id" LIMIT \$2.*`).
					WithArgs("ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Note
				err := testDB.GetOneBy(context.Background(), "title", "ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "notes" WHERE title = \$1.*`).
					WithArgs("groceries").
					WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
						AddRow(1, "groceries").
						AddRow(2, "groceries"))
			})

			It("should return all matching records", func() {
				var results []Note
				err := testDB.GetAllBy(context.Background(), "title", "groceries", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "notes" WHERE title.*`).
					WithArgs("broken").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Note
				err := testDB.GetAllBy(context.Background(), "title", "broken", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateRecord", func() {
		When("the record exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "notes" SET .* WHERE "id" = \$\d+$`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("reports one affected row", func() {
				affected, err := testDB.UpdateRecord(context.Background(), &Note{ID: 1, Title: "updated"})
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches the primary key", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "notes" SET .* WHERE "id" = \$\d+$`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("reports zero affected rows", func() {
				affected, err := testDB.UpdateRecord(context.Background(), &Note{ID: 42, Title: "missing"})
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(0)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^DELETE FROM "notes" WHERE title = \$1$`).
				WithArgs("groceries").
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectCommit()
		})

		It("reports how many rows were removed", func() {
			affected, err := testDB.DeleteBy(context.Background(), "title", "groceries", &Note{})
			Expect(err).NotTo(HaveOccurred())
			Expect(affected).To(Equal(int64(2)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Transaction", func() {
		When("the callback succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "notes" WHERE id = \$1.*`).
					WithArgs(1, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "groceries"))
				mock.ExpectCommit()
			})

			It("commits the transaction", func() {
				err := testDB.Transaction(context.Background(), func(tx *db.PostgresDB) error {
					var note Note
					return tx.GetOneBy(context.Background(), "id", 1, &note)
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the callback fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectRollback()
			})

			It("rolls back and returns the error", func() {
				failure := errors.New("boom")
				err := testDB.Transaction(context.Background(), func(tx *db.PostgresDB) error {
					return failure
				})
				Expect(err).To(MatchError(failure))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("debug rollback is enabled", func() {
			BeforeEach(func() {
				db.WithDebugRollback()(testDB)

				mock.ExpectBegin()
				mock.ExpectRollback()
			})

			It("rolls a successful transaction back without error", func() {
				err := testDB.Transaction(context.Background(), func(tx *db.PostgresDB) error {
					return nil
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
