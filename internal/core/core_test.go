package core_test

import (
	"context"
	"errors"
	"time"

	"todoer/internal/core"
	corefake "todoer/internal/core/fake"
	"todoer/internal/repository"
	repofake "todoer/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Todoer", func() {
	var (
		fakeRepo     *repofake.Repo
		fakeSessions *corefake.SessionService
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		todoer *core.Todoer

		fakeErr        error
		hashedPassword string
	)

	BeforeEach(func() {
		fakeRepo = new(repofake.Repo)
		fakeSessions = new(corefake.SessionService)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		// run the unit of work against the same fake
		fakeRepo.InTransactionStub = func(_ context.Context, fn func(tx repository.Repo) error) error {
			return fn(fakeRepo)
		}

		todoer = core.NewTodoer(fakeLogger, fakeRepo, fakeSessions)

		fakeErr = errors.New("fake error")
		hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
	})

	Describe("Register", func() {
		var (
			creds  core.Credentials
			userID uint
			err    error
		)

		BeforeEach(func() {
			creds = core.Credentials{Username: "alice", Password: "testpass"}
		})

		JustBeforeEach(func() {
			userID, err = todoer.Register(ctx, creds)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(3, nil)
			})

			It("stores a bcrypt hash instead of the password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(userID).To(Equal(uint(3)))

				Expect(fakeRepo.InTransactionCallCount()).To(Equal(1))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.Username).To(Equal("alice"))
				Expect(argUser.PasswordHash).NotTo(Equal("testpass"))
				Expect(bcrypt.CompareHashAndPassword([]byte(argUser.PasswordHash), []byte("testpass"))).To(Succeed())
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(0, repository.ErrDuplicateUsername)
			})

			It("returns ErrUsernameTaken", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(0, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			creds   core.Credentials
			session core.Session
			err     error
		)

		BeforeEach(func() {
			creds = core.Credentials{Username: "alice", Password: "testpass"}
		})

		JustBeforeEach(func() {
			session, err = todoer.Login(ctx, creds)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           3,
					Username:     "alice",
					PasswordHash: hashedPassword,
				}, nil)
				fakeSessions.IssueReturns("signed.token", nil)
			})

			It("issues a session for the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(session.UserID).To(Equal(uint(3)))

				Expect(fakeSessions.IssueCallCount()).To(Equal(1))
				Expect(fakeSessions.IssueArgsForCall(0)).To(Equal(uint(3)))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns incorrect password error without issuing a session", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeSessions.IssueCallCount()).To(Equal(0))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           3,
					Username:     "alice",
					PasswordHash: hashedPassword,
				}, nil)
				creds.Password = "wrongpass"
			})

			It("returns incorrect password error without issuing a session", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeSessions.IssueCallCount()).To(Equal(0))
			})
		})

		When("issuing a session fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           3,
					Username:     "alice",
					PasswordHash: hashedPassword,
				}, nil)
				fakeSessions.IssueReturns("", fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Logout", func() {
		It("revokes the token", func() {
			todoer.Logout("signed.token")

			Expect(fakeSessions.RevokeCallCount()).To(Equal(1))
			Expect(fakeSessions.RevokeArgsForCall(0)).To(Equal("signed.token"))
		})
	})

	Describe("GetUser", func() {
		var (
			user core.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = todoer.GetUser(ctx, 3)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{
					ID:           3,
					Username:     "alice",
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("returns the profile without the password hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(core.User{ID: 3, Username: "alice"}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("UpdateUser", func() {
		var (
			creds core.Credentials
			err   error
		)

		BeforeEach(func() {
			creds = core.Credentials{Username: "alice2", Password: "newpass123"}
		})

		JustBeforeEach(func() {
			err = todoer.UpdateUser(ctx, 3, creds)
		})

		When("the account exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{ID: 3, Username: "alice"}, nil)
				fakeRepo.UpdateUserReturns(nil)
			})

			It("replaces username and password hash", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.UpdateUserArgsForCall(0)
				Expect(argUser.ID).To(Equal(uint(3)))
				Expect(argUser.Username).To(Equal("alice2"))
				Expect(bcrypt.CompareHashAndPassword([]byte(argUser.PasswordHash), []byte("newpass123"))).To(Succeed())
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns ErrUserNotFound without updating", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeRepo.UpdateUserCallCount()).To(Equal(0))
			})
		})

		When("the new username is taken", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{ID: 3, Username: "alice"}, nil)
				fakeRepo.UpdateUserReturns(repository.ErrDuplicateUsername)
			})

			It("returns ErrUsernameTaken", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})
	})

	Describe("DeleteUser", func() {
		var err error

		JustBeforeEach(func() {
			err = todoer.DeleteUser(ctx, 3)
		})

		When("the account exists", func() {
			BeforeEach(func() {
				fakeRepo.DeleteTodosByOwnerReturns(nil)
				fakeRepo.DeleteUserReturns(nil)
			})

			It("removes the todos before the account and revokes all sessions", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteTodosByOwnerCallCount()).To(Equal(1))
				_, argOwner := fakeRepo.DeleteTodosByOwnerArgsForCall(0)
				Expect(argOwner).To(Equal(uint(3)))

				Expect(fakeRepo.DeleteUserCallCount()).To(Equal(1))
				_, argID := fakeRepo.DeleteUserArgsForCall(0)
				Expect(argID).To(Equal(uint(3)))

				Expect(fakeSessions.RevokeUserCallCount()).To(Equal(1))
				Expect(fakeSessions.RevokeUserArgsForCall(0)).To(Equal(uint(3)))
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserReturns(repository.ErrUserNotFound)
			})

			It("returns ErrUserNotFound and keeps sessions alive", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeSessions.RevokeUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ListTodos", func() {
		var (
			todos []core.Todo
			err   error
		)

		JustBeforeEach(func() {
			todos, err = todoer.ListTodos(ctx, 3)
		})

		When("the owner has todos", func() {
			BeforeEach(func() {
				fakeRepo.ListTodosByOwnerReturns([]repository.Todo{
					{ID: 11, UserID: 3, Description: "buy milk", Priority: repository.PriorityNormal},
					{ID: 12, UserID: 3, Description: "call bank", Priority: repository.PriorityUrgent, Completed: true},
				}, nil)
			})

			It("returns them in record order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todos).To(HaveLen(2))
				Expect(todos[0].ID).To(Equal(uint(11)))
				Expect(todos[1].Completed).To(BeTrue())

				_, argOwner := fakeRepo.ListTodosByOwnerArgsForCall(0)
				Expect(argOwner).To(Equal(uint(3)))
			})
		})

		When("the owner has no todos", func() {
			BeforeEach(func() {
				fakeRepo.ListTodosByOwnerReturns([]repository.Todo{}, nil)
			})

			It("returns an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todos).To(BeEmpty())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeRepo.ListTodosByOwnerReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateTodo", func() {
		var (
			draft   core.TodoDraft
			todoID  uint
			err     error
			created time.Time
		)

		BeforeEach(func() {
			created = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			core.TimeNow = func() time.Time { return created }

			draft = core.TodoDraft{
				Description: "buy milk",
				Priority:    repository.PriorityNormal,
			}
			fakeRepo.CreateTodoReturns(11, nil)
		})

		AfterEach(func() {
			core.TimeNow = time.Now
		})

		JustBeforeEach(func() {
			todoID, err = todoer.CreateTodo(ctx, 3, draft)
		})

		It("stamps the creation time and binds the todo to its owner", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(todoID).To(Equal(uint(11)))

			Expect(fakeRepo.CreateTodoCallCount()).To(Equal(1))
			_, argTodo := fakeRepo.CreateTodoArgsForCall(0)
			Expect(argTodo.UserID).To(Equal(uint(3)))
			Expect(argTodo.Description).To(Equal("buy milk"))
			Expect(argTodo.DateCreated).To(Equal(created))
		})
	})

	Describe("UpdateTodo", func() {
		var (
			change core.TodoChange
			err    error
		)

		BeforeEach(func() {
			change = core.TodoChange{
				ID:          11,
				Description: "buy oat milk",
				DateCreated: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				Priority:    repository.PriorityImportant,
				Completed:   true,
			}
		})

		JustBeforeEach(func() {
			err = todoer.UpdateTodo(ctx, 3, change)
		})

		When("the actor owns the todo", func() {
			BeforeEach(func() {
				fakeRepo.GetTodoByIDReturns(repository.Todo{ID: 11, UserID: 3}, nil)
				fakeRepo.UpdateTodoReturns(nil)
			})

			It("writes the replacement state keeping the owner", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdateTodoCallCount()).To(Equal(1))
				_, argTodo := fakeRepo.UpdateTodoArgsForCall(0)
				Expect(argTodo.ID).To(Equal(uint(11)))
				Expect(argTodo.UserID).To(Equal(uint(3)))
				Expect(argTodo.Description).To(Equal("buy oat milk"))
				Expect(argTodo.Completed).To(BeTrue())
			})
		})

		When("the todo belongs to another user", func() {
			BeforeEach(func() {
				fakeRepo.GetTodoByIDReturns(repository.Todo{ID: 11, UserID: 7}, nil)
			})

			It("returns ErrForbidden before any write", func() {
				Expect(err).To(MatchError(core.ErrForbidden))
				Expect(fakeRepo.UpdateTodoCallCount()).To(Equal(0))
			})
		})

		When("the todo does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetTodoByIDReturns(repository.Todo{}, repository.ErrTodoNotFound)
			})

			It("returns ErrTodoNotFound", func() {
				Expect(err).To(MatchError(core.ErrTodoNotFound))
				Expect(fakeRepo.UpdateTodoCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteTodo", func() {
		var err error

		JustBeforeEach(func() {
			err = todoer.DeleteTodo(ctx, 3, 11)
		})

		When("the actor owns the todo", func() {
			BeforeEach(func() {
				fakeRepo.GetTodoByIDReturns(repository.Todo{ID: 11, UserID: 3}, nil)
				fakeRepo.DeleteTodoReturns(nil)
			})

			It("deletes the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteTodoCallCount()).To(Equal(1))
				_, argID := fakeRepo.DeleteTodoArgsForCall(0)
				Expect(argID).To(Equal(uint(11)))
			})
		})

		When("the todo belongs to another user", func() {
			BeforeEach(func() {
				fakeRepo.GetTodoByIDReturns(repository.Todo{ID: 11, UserID: 7}, nil)
			})

			It("returns ErrForbidden before any write", func() {
				Expect(err).To(MatchError(core.ErrForbidden))
				Expect(fakeRepo.DeleteTodoCallCount()).To(Equal(0))
			})
		})

		When("the todo does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetTodoByIDReturns(repository.Todo{}, repository.ErrTodoNotFound)
			})

			It("returns ErrTodoNotFound", func() {
				Expect(err).To(MatchError(core.ErrTodoNotFound))
			})
		})
	})
})
