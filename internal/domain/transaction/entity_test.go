//go:build unit

package transaction_test

import (
	"testing"
	"time"

	"library-backend/internal/domain/transaction"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/errs"
	"library-backend/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func kindPtr(k transaction.Kind) *transaction.Kind       { return &k }
func statusPtr(s transaction.Status) *transaction.Status { return &s }

func TestNew(t *testing.T) {
	type testCase struct {
		name       string
		mutate     func(*transaction.Draft)
		rental     bool
		wantKind   transaction.Kind
		wantStatus transaction.Status
		wantEnd    *time.Time
	}

	runCases := func(t *testing.T, cases []testCase) {
		t.Helper()
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := builder.NewTransactionBuilder().BuildDraft()
				if tc.mutate != nil {
					tc.mutate(&d)
				}
				got, err := transaction.New(d, transaction.StepContext{Today: now, BookHasRentalPrice: tc.rental}, now)
				require.NoError(t, err)

				assert.NotEqual(t, uuid.Nil, got.ID())
				assert.Equal(t, tc.wantKind, got.Kind())
				assert.Equal(t, tc.wantStatus, got.Status())
				if diff := cmp.Diff(tc.wantEnd, got.EndDate()); diff != "" {
					t.Errorf("end date mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}

	t.Run("購入の既定値", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:       "レンタル価格なしは購入でFINISHED",
				wantKind:   transaction.KindPurchase,
				wantStatus: transaction.StatusFinished,
				wantEnd:    datePtr(builder.Date(2024, time.March, 15)),
			},
			{
				name:       "PENDING指定でもFINISHED",
				mutate:     func(d *transaction.Draft) { d.Status = statusPtr(transaction.StatusPending) },
				wantKind:   transaction.KindPurchase,
				wantStatus: transaction.StatusFinished,
				wantEnd:    datePtr(builder.Date(2024, time.March, 15)),
			},
			{
				name:       "IN_PROGRESS指定でもFINISHED",
				mutate:     func(d *transaction.Draft) { d.Status = statusPtr(transaction.StatusInProgress) },
				wantKind:   transaction.KindPurchase,
				wantStatus: transaction.StatusFinished,
				wantEnd:    datePtr(builder.Date(2024, time.March, 15)),
			},
			{
				name:       "CANCELLED指定は維持し終了日なし",
				mutate:     func(d *transaction.Draft) { d.Status = statusPtr(transaction.StatusCancelled) },
				wantKind:   transaction.KindPurchase,
				wantStatus: transaction.StatusCancelled,
			},
			{
				name: "未来の開始日なら終了日は開始日",
				mutate: func(d *transaction.Draft) {
					d.StartDate = datePtr(builder.Date(2024, time.April, 1))
				},
				wantKind:   transaction.KindPurchase,
				wantStatus: transaction.StatusFinished,
				wantEnd:    datePtr(builder.Date(2024, time.April, 1)),
			},
			{
				name: "レンタル可能な本でも種別指定が優先",
				mutate: func(d *transaction.Draft) {
					d.Kind = kindPtr(transaction.KindPurchase)
				},
				rental:     true,
				wantKind:   transaction.KindPurchase,
				wantStatus: transaction.StatusFinished,
				wantEnd:    datePtr(builder.Date(2024, time.March, 15)),
			},
		})
	})

	t.Run("レンタルの既定値", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:       "レンタル価格ありはRENTALでPENDING",
				rental:     true,
				wantKind:   transaction.KindRental,
				wantStatus: transaction.StatusPending,
			},
			{
				name:       "指定ステータスは維持",
				mutate:     func(d *transaction.Draft) { d.Status = statusPtr(transaction.StatusInProgress) },
				rental:     true,
				wantKind:   transaction.KindRental,
				wantStatus: transaction.StatusInProgress,
			},
			{
				name:       "レンタル価格なしでもRENTAL指定は維持",
				mutate:     func(d *transaction.Draft) { d.Kind = kindPtr(transaction.KindRental) },
				wantKind:   transaction.KindRental,
				wantStatus: transaction.StatusPending,
			},
		})
	})

	t.Run("開始日の既定値は今日", func(t *testing.T) {
		d := builder.NewTransactionBuilder().BuildDraft()
		d.StartDate = nil
		got, err := transaction.New(d, transaction.StepContext{Today: now, BookHasRentalPrice: true}, now)
		require.NoError(t, err)
		assert.Equal(t, builder.Date(2024, time.March, 15), got.StartDate())
	})

	t.Run("参照が欠けているとNG", func(t *testing.T) {
		d := builder.NewTransactionBuilder().BuildDraft()
		d.BookID = uuid.Nil
		_, err := transaction.New(d, transaction.StepContext{Today: now}, now)
		assert.True(t, errs.Is(err, transaction.ErrMissingReference))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("終了日が開始日より前ならNG", func(t *testing.T) {
		for _, hasRental := range []bool{false, true} {
			d := builder.NewTransactionBuilder().BuildDraft()
			d.Kind = nil
			d.StartDate = datePtr(builder.Date(2024, time.March, 10))
			d.EndDate = datePtr(builder.Date(2024, time.March, 1))
			got, err := transaction.New(d, transaction.StepContext{Today: builder.Date(2024, time.March, 10), BookHasRentalPrice: hasRental}, now)
			assert.Nil(t, got)
			assert.True(t, errs.Is(err, transaction.ErrEndBeforeStart))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		}
	})

	t.Run("終了日と開始日が同じ日はOK", func(t *testing.T) {
		d := builder.NewTransactionBuilder().BuildDraft()
		d.StartDate = datePtr(time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC))
		d.EndDate = datePtr(time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC))
		got, err := transaction.New(d, transaction.StepContext{Today: now, BookHasRentalPrice: true}, now)
		require.NoError(t, err)
		require.NotNil(t, got.EndDate())
		assert.Equal(t, got.StartDate(), *got.EndDate())
	})
}

func TestPurchaseNeverPending(t *testing.T) {
	requested := []*transaction.Status{
		nil,
		statusPtr(transaction.StatusPending),
		statusPtr(transaction.StatusInProgress),
		statusPtr(transaction.StatusFinished),
		statusPtr(transaction.StatusCancelled),
	}
	starts := []time.Time{
		builder.Date(2023, time.December, 31),
		builder.Date(2024, time.March, 15),
		builder.Date(2024, time.June, 1),
	}

	for _, st := range requested {
		for _, start := range starts {
			d := builder.NewTransactionBuilder().BuildDraft()
			d.Status = st
			d.StartDate = datePtr(start)

			got, err := transaction.New(d, transaction.StepContext{Today: now}, now)
			require.NoError(t, err)

			assert.Equal(t, transaction.KindPurchase, got.Kind())
			assert.Contains(t, []transaction.Status{transaction.StatusFinished, transaction.StatusCancelled}, got.Status())
			if got.Status() == transaction.StatusFinished {
				require.NotNil(t, got.EndDate())
				assert.False(t, got.EndDate().Before(got.StartDate()))
			}
		}
	}
}

func TestChangeStatus(t *testing.T) {
	all := []transaction.Status{
		transaction.StatusPending,
		transaction.StatusInProgress,
		transaction.StatusFinished,
		transaction.StatusCancelled,
	}
	allowed := map[transaction.Status][]transaction.Status{
		transaction.StatusPending:    {transaction.StatusInProgress, transaction.StatusCancelled},
		transaction.StatusInProgress: {transaction.StatusFinished, transaction.StatusCancelled},
	}

	for _, from := range all {
		for _, to := range all {
			ok := false
			for _, a := range allowed[from] {
				ok = ok || a == to
			}
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				tx := builder.NewTransactionBuilder().WithStatus(from).BuildDomain()
				err := tx.ChangeStatus(to, now)
				if ok {
					require.NoError(t, err)
					assert.Equal(t, to, tx.Status())
					return
				}
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
				var ite *transaction.InvalidTransitionError
				require.True(t, errs.As(err, &ite))
				assert.Equal(t, from, ite.From)
				assert.Equal(t, to, ite.To)
				assert.Equal(t, from, tx.Status())
			})
		}
	}

	t.Run("終端状態からは常に失敗", func(t *testing.T) {
		for _, from := range []transaction.Status{transaction.StatusFinished, transaction.StatusCancelled} {
			for _, to := range all {
				assert.False(t, transaction.CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("IN_PROGRESSからPENDINGは失敗", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithStatus(transaction.StatusInProgress).BuildDomain()
		err := tx.ChangeStatus(transaction.StatusPending, now)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Contains(t, err.Error(), "IN_PROGRESS")
	})

	t.Run("ステータス変更は日付を変えない", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithStatus(transaction.StatusInProgress).BuildDomain()
		require.NoError(t, tx.ChangeStatus(transaction.StatusFinished, now))
		assert.Nil(t, tx.EndDate())
		assert.Equal(t, builder.Date(2024, time.January, 1), tx.StartDate())
	})

	t.Run("購入がFINISHEDになると終了日が入る", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().With(func(b *builder.TransactionBuilder) {
			b.Kind = transaction.KindPurchase
			b.Status = transaction.StatusInProgress
		}).BuildDomain()
		require.NoError(t, tx.ChangeStatus(transaction.StatusFinished, now))
		require.NotNil(t, tx.EndDate())
		assert.Equal(t, builder.Date(2024, time.March, 15), *tx.EndDate())
	})

	t.Run("不正なステータス値", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().BuildDomain()
		err := tx.ChangeStatus(transaction.Status("ARCHIVED"), now)
		assert.True(t, errs.Is(err, transaction.ErrInvalidStatus))
	})
}

func TestFinalize(t *testing.T) {
	t.Run("レンタルは開始日+30日を一度だけ設定", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().BuildDomain()

		tx.Finalize(now)
		require.NotNil(t, tx.EndDate())
		assert.Equal(t, builder.Date(2024, time.January, 31), *tx.EndDate())
		assert.Equal(t, transaction.StatusFinished, tx.Status())

		tx.Finalize(now.AddDate(0, 1, 0))
		assert.Equal(t, builder.Date(2024, time.January, 31), *tx.EndDate())
		assert.Equal(t, transaction.StatusFinished, tx.Status())
	})

	t.Run("レンタルの既存終了日は上書きしない", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithEndDate(builder.Date(2024, time.January, 10)).BuildDomain()
		tx.Finalize(now)
		assert.Equal(t, builder.Date(2024, time.January, 10), *tx.EndDate())
	})

	t.Run("遷移表を経由しない", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithStatus(transaction.StatusCancelled).BuildDomain()
		tx.Finalize(now)
		assert.Equal(t, transaction.StatusFinished, tx.Status())
	})

	t.Run("購入は常に今日", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().AsPurchase().BuildDomain()
		tx.Finalize(now)
		assert.Equal(t, clock.DateOf(now), *tx.EndDate())
		assert.Equal(t, transaction.StatusFinished, tx.Status())
	})
}

func TestRenew(t *testing.T) {
	t.Run("0日は15日と同じ", func(t *testing.T) {
		a := builder.NewTransactionBuilder().BuildDomain()
		b := builder.NewTransactionBuilder().BuildDomain()

		require.NoError(t, a.Renew(0, now))
		require.NoError(t, b.Renew(15, now))
		assert.Equal(t, *b.EndDate(), *a.EndDate())
		assert.Equal(t, builder.Date(2024, time.February, 15), *a.EndDate())
	})

	t.Run("負の日数も15日", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithEndDate(builder.Date(2024, time.February, 1)).BuildDomain()
		require.NoError(t, tx.Renew(-3, now))
		assert.Equal(t, builder.Date(2024, time.February, 16), *tx.EndDate())
	})

	t.Run("購入は更新できない", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().AsPurchase().BuildDomain()
		before := *tx.EndDate()

		err := tx.Renew(10, now)
		assert.True(t, errs.Is(err, transaction.ErrRenewalRestricted))
		assert.True(t, errs.Is(err, errs.ErrBusinessRule))
		assert.Equal(t, before, *tx.EndDate())
		assert.Equal(t, transaction.StatusFinished, tx.Status())
	})

	t.Run("上限日数ちょうどはOK", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithEndDate(builder.Date(2024, time.February, 1)).BuildDomain()
		require.NoError(t, tx.Renew(transaction.MaxRenewalDays, now))
		assert.Equal(t, builder.Date(2025, time.January, 31), *tx.EndDate())
	})

	t.Run("上限日数を超えるとNG", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithEndDate(builder.Date(2024, time.February, 1)).BuildDomain()

		err := tx.Renew(transaction.MaxRenewalDays+1, now)
		assert.True(t, errs.Is(err, transaction.ErrRenewalTooLong))
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, builder.Date(2024, time.February, 1), *tx.EndDate())
	})

	t.Run("終了済みのレンタルもPENDINGに戻る", func(t *testing.T) {
		for _, st := range []transaction.Status{transaction.StatusFinished, transaction.StatusCancelled, transaction.StatusInProgress} {
			tx := builder.NewTransactionBuilder().WithStatus(st).BuildDomain()
			require.NoError(t, tx.Renew(5, now))
			assert.Equal(t, transaction.StatusPending, tx.Status(), "from %s", st)
		}
	})
}

func TestRentalScenario(t *testing.T) {
	d := builder.NewTransactionBuilder().BuildDraft()
	d.StartDate = datePtr(builder.Date(2024, time.January, 1))

	tx, err := transaction.New(d, transaction.StepContext{Today: now, BookHasRentalPrice: true}, now)
	require.NoError(t, err)
	assert.Equal(t, transaction.KindRental, tx.Kind())
	assert.Nil(t, tx.EndDate())

	tx.Finalize(now)
	assert.Equal(t, builder.Date(2024, time.January, 31), *tx.EndDate())
	assert.Equal(t, transaction.StatusFinished, tx.Status())

	require.NoError(t, tx.Renew(10, now))
	assert.Equal(t, builder.Date(2024, time.February, 10), *tx.EndDate())
	assert.Equal(t, transaction.StatusPending, tx.Status())
}
