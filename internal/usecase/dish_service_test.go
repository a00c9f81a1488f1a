package usecase_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/internal/ports/mocks"
	"github.com/Gunvolt24/grubdash/internal/store/memory"
	"github.com/Gunvolt24/grubdash/internal/usecase"
	"github.com/Gunvolt24/grubdash/pkg/payload"
	"github.com/Gunvolt24/grubdash/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDishService(t *testing.T, seed ...domain.Dish) (*usecase.DishService, *memory.DishStore, *mocks.MockIDSupplier) {
	ctrl := gomock.NewController(t)
	ids := mocks.NewMockIDSupplier(ctrl)
	store := memory.NewDishStore(seed)
	return usecase.NewDishService(store, ids, noopLogger{}), store, ids
}

func TestDishCreate_ThenRead(t *testing.T) {
	svc, _, ids := newDishService(t, domain.Dish{ID: "old"})
	ctx := context.Background()

	ids.EXPECT().NextID().Return("new-1")

	created, err := svc.Create(ctx, body(t, validDish()))
	require.NoError(t, err)
	assert.Equal(t, domain.Dish{
		ID:          "new-1",
		Name:        "Dolcelatte and chickpea spaghetti",
		Description: "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
		Price:       19,
		ImageURL:    "https://images.example.com/spaghetti.jpg",
	}, created)

	got, err := svc.Read(ctx, "new-1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new-1", list[1].ID)
}

func TestDish_NotFound(t *testing.T) {
	svc, _, _ := newDishService(t)
	ctx := context.Background()

	_, err := svc.Read(ctx, "missing-42")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Dish missing-42 does not exist")

	_, err = svc.Update(ctx, "missing-42", body(t, validDish()))
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "missing-42")
}

func TestDishCreate_ValidationPriority(t *testing.T) {
	cases := []struct {
		name string
		data any
		want string
	}{
		{"no data", nil, validate.MsgDishBodyRequired},
		{"no name", with(validDish(), "name", nil), validate.MsgDishName},
		{"blank name", with(validDish(), "name", "   "), validate.MsgDishName},
		{"no description, no price", with(with(validDish(), "description", nil), "price", nil), validate.MsgDishDescription},
		{"no price", with(validDish(), "price", nil), validate.MsgDishPrice},
		{"zero price", with(validDish(), "price", 0), validate.MsgDishPrice},
		{"negative price", with(validDish(), "price", -1), validate.MsgDishPriceInteger},
		{"fractional price", with(validDish(), "price", 1.5), validate.MsgDishPriceInteger},
		{"string price", with(validDish(), "price", "10"), validate.MsgDishPriceInteger},
		{"no image", with(validDish(), "image_url", nil), validate.MsgDishImageURL},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, _ := newDishService(t)

			var p payload.Payload
			if tc.data != nil {
				p = body(t, tc.data)
			}
			_, err := svc.Create(context.Background(), p)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.EqualError(t, err, tc.want)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestDishUpdate_KeepsIDAndPosition(t *testing.T) {
	svc, store, _ := newDishService(t,
		domain.Dish{ID: "a", Name: "A", Description: "a", Price: 1, ImageURL: "a"},
		domain.Dish{ID: "b", Name: "B", Description: "b", Price: 2, ImageURL: "b"},
	)
	ctx := context.Background()

	updated, err := svc.Update(ctx, "a", body(t, with(validDish(), "id", "a")))
	require.NoError(t, err)
	assert.Equal(t, "a", updated.ID)
	assert.Equal(t, 19, updated.Price)

	list, _ := store.List(ctx)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "Dolcelatte and chickpea spaghetti", list[0].Name)
	assert.Equal(t, "B", list[1].Name)
}

func TestDishUpdate_FalsyPayloadIDIgnored(t *testing.T) {
	svc, _, _ := newDishService(t, domain.Dish{ID: "a"})

	for _, id := range []any{"", 0, false} {
		got, err := svc.Update(context.Background(), "a", body(t, with(validDish(), "id", id)))
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)
	}
}

func TestDishUpdate_IDMismatch_NoMutation(t *testing.T) {
	orig := domain.Dish{ID: "a", Name: "A", Description: "a", Price: 1, ImageURL: "a"}
	svc, store, _ := newDishService(t, orig)
	ctx := context.Background()

	_, err := svc.Update(ctx, "a", body(t, with(validDish(), "id", "b")))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.EqualError(t, err, "Dish id does not match route id. Dish: b, Route: a")

	got, _, _ := store.Find(ctx, "a")
	assert.Equal(t, orig, got)
}

func TestDishUpdate_ValidationBeforeIDMatch(t *testing.T) {
	svc, _, _ := newDishService(t, domain.Dish{ID: "a"})

	_, err := svc.Update(context.Background(), "a", body(t, with(with(validDish(), "id", "b"), "name", "")))
	assert.EqualError(t, err, validate.MsgDishName)
}

func TestDish_RepeatedFailuresDoNotMutate(t *testing.T) {
	orig := domain.Dish{ID: "a", Name: "A", Description: "a", Price: 1, ImageURL: "a"}
	svc, store, _ := newDishService(t, orig)
	ctx := context.Background()
	bad := body(t, with(validDish(), "price", -5))

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, bad)
		require.Error(t, err)
		_, err = svc.Update(ctx, "a", bad)
		require.Error(t, err)
	}

	list, _ := store.List(ctx)
	assert.Equal(t, []domain.Dish{orig}, list)
}

func TestDishUpdate_RecordLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDishStore(ctrl)
	svc := usecase.NewDishService(store, mocks.NewMockIDSupplier(ctrl), noopLogger{})

	gomock.InOrder(
		store.EXPECT().Find(gomock.Any(), "a").Return(domain.Dish{ID: "a"}, 0, true),
		store.EXPECT().ReplaceAt(gomock.Any(), 0, gomock.Any()).Return(errRecordNotFound()),
	)

	_, err := svc.Update(context.Background(), "a", body(t, validDish()))
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Dish a does not exist")
}

func TestDish_CanceledContext(t *testing.T) {
	svc, _, _ := newDishService(t, domain.Dish{ID: "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Read(ctx, "a")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.KindUnknown, domain.KindOf(err))
}
