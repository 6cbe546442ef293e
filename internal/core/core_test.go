package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"billest/internal/core"
	"billest/internal/core/fake"
	"billest/internal/repository"
	"billest/pkg/password"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Biller", func() {
	var (
		fakeRepo      *fake.Repository
		fakeHasher    *fake.PasswordHasher
		fakeEstimator *fake.Estimator
		ctx           context.Context
		now           time.Time

		biller *core.Biller

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeHasher = new(fake.PasswordHasher)
		fakeEstimator = new(fake.Estimator)
		ctx = context.Background()
		now = time.Date(2024, time.May, 1, 13, 4, 5, 123456000, time.Local)

		biller = core.NewBiller(zap.NewNop().Sugar(), fakeRepo, fakeHasher, fakeEstimator, func() time.Time {
			return now
		})

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg     core.RegisterMessage
			profile core.UserProfile
			err     error
		)

		BeforeEach(func() {
			fullName := "Alice Doe"
			msg = core.RegisterMessage{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret",
				FullName: &fullName,
			}
			fakeHasher.HashReturns("hashed", nil)
			fakeRepo.CreateUserStub = func(_ context.Context, u repository.User) (repository.User, error) {
				u.ID = 1
				return u, nil
			}
		})

		JustBeforeEach(func() {
			profile, err = biller.Register(ctx, msg)
		})

		When("the account is new", func() {
			It("should store the hashed password and the creation time", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(profile.ID).To(Equal(int64(1)))
				Expect(profile.Username).To(Equal("alice"))
				Expect(*profile.FullName).To(Equal("Alice Doe"))

				Expect(fakeHasher.HashArgsForCall(0)).To(Equal("secret"))
				_, stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(stored.PasswordHash).To(Equal("hashed"))
				Expect(stored.CreatedAt).To(Equal("2024-05-01T13:04:05.123456"))
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUserExists)
			})

			It("should return a conflict", func() {
				Expect(err).To(Equal(core.ErrUserExists))
				Expect(core.KindOf(err)).To(Equal(core.KindConflict))
				Expect(err).To(MatchError("Username or email already exists"))
			})
		})

		When("the password is longer than bcrypt accepts", func() {
			BeforeEach(func() {
				msg.Password = strings.Repeat("p", 73)
				biller = core.NewBiller(zap.NewNop().Sugar(), fakeRepo, password.NewBcryptHasher(bcrypt.MinCost), fakeEstimator, nil)
			})

			It("should still register the user", func() {
				Expect(err).NotTo(HaveOccurred())
				_, stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(password.NewBcryptHasher(bcrypt.MinCost).Compare(stored.PasswordHash, msg.Password)).To(Succeed())
			})
		})

		When("hashing fails", func() {
			BeforeEach(func() {
				fakeHasher.HashReturns("", fakeErr)
			})

			It("should not create the user", func() {
				Expect(core.KindOf(err)).To(Equal(core.KindInternal))
				Expect(err).To(MatchError("hash password: fake error"))
				Expect(fakeRepo.CreateUserCallCount()).To(BeZero())
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return an internal error carrying the cause", func() {
				Expect(core.KindOf(err)).To(Equal(core.KindInternal))
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(Equal("create user: fake error"))
			})
		})
	})

	Describe("Login", func() {
		var (
			profile core.UserProfile
			err     error
		)

		BeforeEach(func() {
			fakeRepo.GetUserByUsernameReturns(repository.User{
				ID:           2,
				Username:     "bob",
				Email:        "bob@example.com",
				PasswordHash: "hashed",
				CreatedAt:    "2024-01-01T00:00:00.000000",
			}, nil)
		})

		JustBeforeEach(func() {
			profile, err = biller.Login(ctx, core.LoginMessage{Username: "bob", Password: "secret"})
		})

		When("the password matches", func() {
			It("should return the public profile", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(profile).To(Equal(core.UserProfile{
					ID:        2,
					Username:  "bob",
					Email:     "bob@example.com",
					CreatedAt: "2024-01-01T00:00:00.000000",
				}))

				hash, password := fakeHasher.CompareArgsForCall(0)
				Expect(hash).To(Equal("hashed"))
				Expect(password).To(Equal("secret"))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeHasher.CompareReturns(fakeErr)
			})

			It("should reject the credentials", func() {
				Expect(err).To(Equal(core.ErrInvalidCredentials))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should reject the credentials the same way", func() {
				Expect(err).To(Equal(core.ErrInvalidCredentials))
				Expect(core.KindOf(err)).To(Equal(core.KindUnauthorized))
				Expect(fakeHasher.CompareCallCount()).To(BeZero())
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return an internal error", func() {
				Expect(core.KindOf(err)).To(Equal(core.KindInternal))
				Expect(err).To(MatchError("get user: fake error"))
			})
		})
	})

	Describe("GetUser", func() {
		It("should return the profile", func() {
			fakeRepo.GetUserByIDReturns(repository.User{ID: 3, Username: "carol"}, nil)

			profile, err := biller.GetUser(ctx, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.Username).To(Equal("carol"))
			_, id := fakeRepo.GetUserByIDArgsForCall(0)
			Expect(id).To(Equal(int64(3)))
		})

		It("should report a missing user as not found", func() {
			fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)

			_, err := biller.GetUser(ctx, 3)
			Expect(err).To(Equal(core.ErrUserNotFound))
			Expect(core.KindOf(err)).To(Equal(core.KindNotFound))
		})
	})

	Describe("Predict", func() {
		var userID int64

		BeforeEach(func() {
			userID = 5
			fakeEstimator.EstimateReturns(46.0)
		})

		It("should store the estimate with the owner and the current time", func() {
			bill, err := biller.Predict(ctx, core.PredictMessage{Units: 300, UserID: &userID})
			Expect(err).NotTo(HaveOccurred())
			Expect(bill).To(Equal(46.0))

			Expect(fakeEstimator.EstimateArgsForCall(0)).To(Equal(300.0))
			_, entry := fakeRepo.SaveHistoryArgsForCall(0)
			Expect(entry.UserID).To(Equal(&userID))
			Expect(entry.Units).To(Equal(300.0))
			Expect(entry.PredictedBill).To(Equal(46.0))
			Expect(entry.Timestamp).To(Equal("2024-05-01T13:04:05.123456"))
		})

		It("should store guest predictions without an owner", func() {
			_, err := biller.Predict(ctx, core.PredictMessage{Units: 0})
			Expect(err).NotTo(HaveOccurred())

			_, entry := fakeRepo.SaveHistoryArgsForCall(0)
			Expect(entry.UserID).To(BeNil())
		})

		It("should fail when the entry cannot be stored", func() {
			fakeRepo.SaveHistoryReturns(repository.HistoryEntry{}, fakeErr)

			_, err := biller.Predict(ctx, core.PredictMessage{Units: 1})
			Expect(core.KindOf(err)).To(Equal(core.KindInternal))
			Expect(err).To(MatchError("save history: fake error"))
		})
	})

	Describe("ListHistory", func() {
		It("should map the stored entries", func() {
			fakeRepo.ListHistoryReturns([]repository.HistoryEntry{
				{ID: 2, Units: 10, PredictedBill: 11.2, Timestamp: "t2"},
				{ID: 1, Units: 0, PredictedBill: 10, Timestamp: "t1"},
			}, nil)

			items, err := biller.ListHistory(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(Equal([]core.HistoryItem{
				{ID: 2, Units: 10, PredictedBill: 11.2, Timestamp: "t2"},
				{ID: 1, Units: 0, PredictedBill: 10, Timestamp: "t1"},
			}))
		})

		It("should return an empty, non-nil list when there is nothing stored", func() {
			fakeRepo.ListHistoryReturns([]repository.HistoryEntry{}, nil)

			items, err := biller.ListHistory(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).NotTo(BeNil())
			Expect(items).To(BeEmpty())
		})

		It("should fail when the query fails", func() {
			fakeRepo.ListHistoryReturns(nil, fakeErr)

			_, err := biller.ListHistory(ctx, nil)
			Expect(err).To(MatchError("list history: fake error"))
		})
	})

	Describe("DeleteHistoryItem", func() {
		It("should succeed even if nothing was deleted", func() {
			fakeRepo.DeleteHistoryEntryReturns(0, nil)

			Expect(biller.DeleteHistoryItem(ctx, 99)).To(Succeed())
			_, id := fakeRepo.DeleteHistoryEntryArgsForCall(0)
			Expect(id).To(Equal(int64(99)))
		})

		It("should fail when the storage fails", func() {
			fakeRepo.DeleteHistoryEntryReturns(0, fakeErr)

			err := biller.DeleteHistoryItem(ctx, 99)
			Expect(core.KindOf(err)).To(Equal(core.KindInternal))
		})
	})

	Describe("ClearHistory", func() {
		It("should clear the given owner's history", func() {
			userID := int64(8)
			Expect(biller.ClearHistory(ctx, &userID)).To(Succeed())

			_, owner := fakeRepo.ClearHistoryArgsForCall(0)
			Expect(*owner).To(Equal(int64(8)))
		})

		It("should fail when the storage fails", func() {
			fakeRepo.ClearHistoryReturns(0, fakeErr)

			Expect(biller.ClearHistory(ctx, nil)).To(MatchError("clear history: fake error"))
		})
	})

	Describe("GuestPredictionsToday", func() {
		It("should count guest predictions of the local date", func() {
			fakeRepo.CountGuestHistoryOnReturns(4, nil)

			count, err := biller.GuestPredictionsToday(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(4)))
			_, day := fakeRepo.CountGuestHistoryOnArgsForCall(0)
			Expect(day).To(Equal("2024-05-01"))
		})

		It("should fail when the count fails", func() {
			fakeRepo.CountGuestHistoryOnReturns(0, fakeErr)

			_, err := biller.GuestPredictionsToday(ctx)
			Expect(err).To(MatchError("count guest predictions: fake error"))
		})
	})
})

var _ = Describe("Tariff", func() {
	DescribeTable("DefaultTariff",
		func(units, bill float64) {
			Expect(core.DefaultTariff.Estimate(units)).To(Equal(bill))
		},
		Entry("typical usage", 300.0, 46.0),
		Entry("no usage", 0.0, 10.0),
		Entry("negative usage", -50.0, 4.0),
		Entry("product rounded before the fee is added", 0.148, 10.017759999999999),
	)
})
