package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"battery-delivery/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Delivery хранит копию таблицы entregas в памяти. Кэш заменяется целиком при каждой
// перезагрузке: после любой успешной записи и по уведомлению об изменении таблицы.
type Delivery struct {
	repository  Repository
	notifier    Notifier
	publisher   ChangePublisher
	timeFactory TimeFactory
	validate    *validator.Validate

	mu    sync.RWMutex
	cache []entities.Delivery
}

func New(
	repository Repository,
	notifier Notifier,
	publisher ChangePublisher,
	timeFactory TimeFactory,
) *Delivery {
	return &Delivery{
		repository:  repository,
		notifier:    notifier,
		publisher:   publisher,
		timeFactory: timeFactory,
		validate:    newValidator(),
		cache:       []entities.Delivery{},
	}
}

// List загружает все доставки (новые первыми) и заменяет кэш.
// При ошибке кэш остается прежним.
func (d *Delivery) List(ctx context.Context) ([]entities.Delivery, error) {
	deliveries, err := d.repository.List(ctx)
	if err != nil {
		d.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationError,
			Title:   "❌ Erro",
			Message: "Não foi possível carregar as entregas.",
		})
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	d.mu.Lock()
	d.cache = deliveries
	d.mu.Unlock()

	CachedDeliveries.Set(float64(len(deliveries)))

	return cloneDeliveries(deliveries), nil
}

func (d *Delivery) Reload(ctx context.Context) error {
	_, err := d.List(ctx)
	return err
}

func (d *Delivery) Create(ctx context.Context, create entities.DeliveryCreate) (*entities.Delivery, error) {
	err := d.validateCreate(create)
	if err != nil {
		d.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationWarning,
			Title:   "⚠️ Campos obrigatórios",
			Message: "Preencha cliente, endereço, telefone e bateria.",
		})
		return nil, err
	}

	if create.OrderedAt.IsZero() {
		create.OrderedAt = d.timeFactory.Now()
	}

	created, err := d.repository.Create(ctx, create)
	if err != nil {
		d.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationError,
			Title:   "❌ Erro",
			Message: "Não foi possível criar a entrega.",
		})
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	d.notifier.Notify(ctx, entities.Notification{
		Level:   entities.NotificationSuccess,
		Title:   "✅ Entrega criada!",
		Message: "A entrega foi cadastrada com sucesso.",
	})
	d.afterWrite(ctx)

	return created, nil
}

// Update частичное обновление без оптимистичного слияния: кэш обновляется только перезагрузкой.
func (d *Delivery) Update(ctx context.Context, id uuid.UUID, modify entities.DeliveryModify) (*entities.Delivery, error) {
	err := validateModify(modify)
	if err != nil {
		d.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationWarning,
			Title:   "⚠️ Atualização inválida",
			Message: "Os dados enviados não podem ser aplicados à entrega.",
		})
		return nil, err
	}

	stampTransition(&modify, d.timeFactory.Now)

	updated, err := d.repository.Update(ctx, id, modify)
	if modify.Status != nil {
		TransitionsTotal.WithLabelValues(modify.Status.String(), transitionResult(err)).Inc()
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrDeliveryNotFound):
			d.notifier.Notify(ctx, entities.Notification{
				Level:   entities.NotificationWarning,
				Title:   "⚠️ Entrega não encontrada",
				Message: "A entrega não existe mais.",
			})
			return nil, err
		case errors.Is(err, ErrInvalidTransition):
			d.notifier.Notify(ctx, entities.Notification{
				Level:   entities.NotificationWarning,
				Title:   "⚠️ Entrega já atualizada",
				Message: "O status da entrega foi alterado por outra pessoa.",
			})
			return nil, err
		default:
			d.notifier.Notify(ctx, entities.Notification{
				Level:   entities.NotificationError,
				Title:   "❌ Erro",
				Message: "Não foi possível atualizar a entrega.",
			})
			return nil, fmt.Errorf("update delivery: %w", err)
		}
	}

	d.afterWrite(ctx)

	return updated, nil
}

// stampTransition проставляет время старта и прибытия, если переход пришел без него.
func stampTransition(modify *entities.DeliveryModify, now func() time.Time) {
	if modify.Status == nil {
		return
	}
	switch *modify.Status {
	case entities.DeliveryInProgress:
		if modify.StartedAt == nil {
			startedAt := now()
			modify.StartedAt = &startedAt
		}
	case entities.DeliveryCompleted:
		if modify.ArrivedAt == nil {
			arrivedAt := now()
			modify.ArrivedAt = &arrivedAt
		}
	}
}

// Start курьер берет доставку в работу. Только из pendente.
func (d *Delivery) Start(ctx context.Context, id uuid.UUID, courierName string) (*entities.Delivery, error) {
	courierName = strings.TrimSpace(courierName)
	if courierName == "" {
		d.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationWarning,
			Title:   "⚠️ Selecione o entregador",
			Message: "Por favor, selecione seu nome antes de iniciar a entrega.",
		})
		return nil, ErrCourierMissing
	}

	status := entities.DeliveryInProgress
	startedAt := d.timeFactory.Now()

	started, err := d.Update(ctx, id, entities.DeliveryModify{
		Status:    &status,
		Courier:   &courierName,
		StartedAt: &startedAt,
	})
	if err != nil {
		return nil, err
	}

	d.notifier.Notify(ctx, entities.Notification{
		Level:   entities.NotificationSuccess,
		Title:   "🚀 Entrega iniciada!",
		Message: "A entrega foi marcada como 'Em Andamento'.",
	})
	return started, nil
}

// Complete завершает доставку. Без локации доставка все равно завершается,
// пользователь получает предупреждение.
func (d *Delivery) Complete(ctx context.Context, id uuid.UUID, location *string) (*entities.Delivery, error) {
	status := entities.DeliveryCompleted
	arrivedAt := d.timeFactory.Now()

	modify := entities.DeliveryModify{
		Status:    &status,
		ArrivedAt: &arrivedAt,
	}

	if isBlank(location) {
		d.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationWarning,
			Title:   "⚠️ Erro de localização",
			Message: "Não foi possível obter sua localização. A entrega será finalizada sem coordenadas.",
		})
	} else {
		trimmed := strings.TrimSpace(*location)
		modify.Location = &trimmed
	}

	completed, err := d.Update(ctx, id, modify)
	if err != nil {
		return nil, err
	}

	d.notifier.Notify(ctx, entities.Notification{
		Level:   entities.NotificationSuccess,
		Title:   "✅ Entrega finalizada!",
		Message: fmt.Sprintf("Entrega finalizada às %s.", arrivedAt.Format("15:04")),
	})
	return completed, nil
}

// Get ищет доставку в кэше, при промахе идет в хранилище.
func (d *Delivery) Get(ctx context.Context, id uuid.UUID) (*entities.Delivery, error) {
	d.mu.RLock()
	for i := range d.cache {
		if d.cache[i].ID == id {
			found := d.cache[i]
			d.mu.RUnlock()
			return &found, nil
		}
	}
	d.mu.RUnlock()

	delivery, err := d.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDeliveryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return delivery, nil
}

// Cached снимок кэша, отфильтрованный на стороне сервиса.
func (d *Delivery) Cached(filter entities.DeliveryFilter) []entities.Delivery {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]entities.Delivery, 0, len(d.cache))
	for _, delivery := range d.cache {
		if filter.Match(delivery) {
			result = append(result, delivery)
		}
	}
	return result
}

// afterWrite полная перезагрузка кэша и оповещение других инстансов.
// Ошибки не отменяют уже выполненную запись.
func (d *Delivery) afterWrite(ctx context.Context) {
	_, _ = d.List(ctx)

	err := d.publisher.PublishChange(ctx, entities.TableDeliveries)
	if err != nil {
		d.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationWarning,
			Title:   "⚠️ Sincronização",
			Message: "Outros terminais podem demorar a ver a alteração.",
		})
	}
}

func transitionResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidTransition):
		return "conflict"
	case errors.Is(err, ErrDeliveryNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func cloneDeliveries(deliveries []entities.Delivery) []entities.Delivery {
	result := make([]entities.Delivery, len(deliveries))
	copy(result, deliveries)
	return result
}
