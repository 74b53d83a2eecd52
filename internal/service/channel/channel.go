package channel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"battery-delivery/internal/entities"
	"battery-delivery/internal/repository"

	"github.com/google/uuid"
)

// Channel кэширует таблицу canais. Имя канала уникально без учета регистра:
// проверка и запись идут в одной транзакции, конкурентные вставки разрешает уникальный индекс.
type Channel struct {
	repository Repository
	notifier   Notifier
	publisher  ChangePublisher
	txManager  TxManager

	mu    sync.RWMutex
	cache []entities.Channel
}

func New(
	repository Repository,
	notifier Notifier,
	publisher ChangePublisher,
	txManager TxManager,
) *Channel {
	return &Channel{
		repository: repository,
		notifier:   notifier,
		publisher:  publisher,
		txManager:  txManager,
		cache:      []entities.Channel{},
	}
}

func (c *Channel) List(ctx context.Context) ([]entities.Channel, error) {
	channels, err := c.repository.List(ctx)
	if err != nil {
		c.notifyLoadError(ctx)
		return nil, fmt.Errorf("list channels: %w", err)
	}

	c.mu.Lock()
	c.cache = channels
	c.mu.Unlock()

	return cloneChannels(channels), nil
}

// ListActive только активные каналы, для формы продавца.
func (c *Channel) ListActive(ctx context.Context) ([]entities.Channel, error) {
	active, err := c.repository.ListActive(ctx)
	if err != nil {
		c.notifyLoadError(ctx)
		return nil, fmt.Errorf("list active channels: %w", err)
	}

	return cloneChannels(active), nil
}

func (c *Channel) Reload(ctx context.Context) error {
	_, err := c.List(ctx)
	return err
}

func (c *Channel) Create(ctx context.Context, name string, active bool) (*entities.Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		c.notifyInvalidName(ctx)
		return nil, ErrValidation
	}

	var created *entities.Channel
	// гонку двух одинаковых имен разрешает уникальный индекс по lower(nome_canal)
	err := c.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		exists, err := c.repository.ExistsByName(ctx, name, nil)
		if err != nil {
			return fmt.Errorf("check channel name: %w", err)
		}
		if exists {
			return ErrDuplicateName
		}

		created, err = c.repository.Create(ctx, name, active)
		if err != nil {
			return fmt.Errorf("create channel: %w", err)
		}
		return nil
	})
	if err != nil {
		c.notifyWriteError(ctx, err, "Não foi possível criar o canal.")
		return nil, err
	}

	c.notifier.Notify(ctx, entities.Notification{
		Level:   entities.NotificationSuccess,
		Title:   "✅ Canal criado!",
		Message: fmt.Sprintf("O canal %q foi cadastrado.", created.Name),
	})
	c.afterWrite(ctx)

	return created, nil
}

// Update при смене имени повторяет проверку уникальности, исключая сам канал.
func (c *Channel) Update(ctx context.Context, id uuid.UUID, channelModify entities.ChannelModify) (*entities.Channel, error) {
	if channelModify.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	if channelModify.Name != nil {
		name := strings.TrimSpace(*channelModify.Name)
		if name == "" {
			c.notifyInvalidName(ctx)
			return nil, ErrValidation
		}
		channelModify.Name = &name
	}

	var (
		updated *entities.Channel
		err     error
	)
	if channelModify.Name == nil {
		updated, err = c.repository.Update(ctx, id, channelModify)
		if err != nil && !errors.Is(err, ErrChannelNotFound) {
			err = fmt.Errorf("update channel: %w", err)
		}
	} else {
		err = c.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
			exists, err := c.repository.ExistsByName(ctx, *channelModify.Name, &id)
			if err != nil {
				return fmt.Errorf("check channel name: %w", err)
			}
			if exists {
				return ErrDuplicateName
			}

			updated, err = c.repository.Update(ctx, id, channelModify)
			if err != nil && !errors.Is(err, ErrChannelNotFound) {
				return fmt.Errorf("update channel: %w", err)
			}
			return err
		})
	}
	if err != nil {
		c.notifyWriteError(ctx, err, "Não foi possível atualizar o canal.")
		return nil, err
	}

	c.afterWrite(ctx)

	return updated, nil
}

func (c *Channel) Activate(ctx context.Context, id uuid.UUID) (*entities.Channel, error) {
	active := true
	return c.Update(ctx, id, entities.ChannelModify{Active: &active})
}

func (c *Channel) Deactivate(ctx context.Context, id uuid.UUID) (*entities.Channel, error) {
	active := false
	return c.Update(ctx, id, entities.ChannelModify{Active: &active})
}

// Toggle переключает флаг активности на противоположный.
func (c *Channel) Toggle(ctx context.Context, id uuid.UUID) (*entities.Channel, error) {
	var toggled *entities.Channel
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.repository.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrChannelNotFound) {
				return err
			}
			return fmt.Errorf("get channel: %w", err)
		}

		active := !current.Active
		toggled, err = c.repository.Update(ctx, id, entities.ChannelModify{Active: &active})
		if err != nil && !errors.Is(err, ErrChannelNotFound) {
			return fmt.Errorf("toggle channel: %w", err)
		}
		return err
	})
	if repository.IsSerializationFailure(err) {
		err = fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if err != nil {
		c.notifyWriteError(ctx, err, "Não foi possível alterar o status do canal.")
		return nil, err
	}

	c.afterWrite(ctx)

	return toggled, nil
}

func (c *Channel) Get(ctx context.Context, id uuid.UUID) (*entities.Channel, error) {
	c.mu.RLock()
	for i := range c.cache {
		if c.cache[i].ID == id {
			found := c.cache[i]
			c.mu.RUnlock()
			return &found, nil
		}
	}
	c.mu.RUnlock()

	channel, err := c.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrChannelNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get channel: %w", err)
	}
	return channel, nil
}

// Delete удаляет канал безвозвратно. Доставки хранят имя канала текстом и не затрагиваются.
func (c *Channel) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.repository.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrChannelNotFound) {
			err = fmt.Errorf("delete channel: %w", err)
		}
		c.notifyWriteError(ctx, err, "Não foi possível excluir o canal.")
		return err
	}

	c.notifier.Notify(ctx, entities.Notification{
		Level:   entities.NotificationSuccess,
		Title:   "🗑️ Canal excluído",
		Message: "O canal foi removido.",
	})
	c.afterWrite(ctx)

	return nil
}

func (c *Channel) afterWrite(ctx context.Context) {
	_ = c.Reload(ctx)

	err := c.publisher.PublishChange(ctx, entities.TableChannels)
	if err != nil {
		c.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationWarning,
			Title:   "⚠️ Sincronização",
			Message: "Outros terminais podem demorar a ver a alteração.",
		})
	}
}

func (c *Channel) notifyLoadError(ctx context.Context) {
	c.notifier.Notify(ctx, entities.Notification{
		Level:   entities.NotificationError,
		Title:   "❌ Erro",
		Message: "Não foi possível carregar os canais.",
	})
}

func (c *Channel) notifyInvalidName(ctx context.Context) {
	c.notifier.Notify(ctx, entities.Notification{
		Level:   entities.NotificationWarning,
		Title:   "⚠️ Nome obrigatório",
		Message: "Informe o nome do canal.",
	})
}

// notifyWriteError дубликат и отсутствующий канал - предупреждения, остальное - ошибка.
func (c *Channel) notifyWriteError(ctx context.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrDuplicateName):
		c.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationWarning,
			Title:   "⚠️ Canal duplicado",
			Message: "Já existe um canal com esse nome.",
		})
	case errors.Is(err, ErrChannelNotFound):
		c.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationWarning,
			Title:   "⚠️ Canal não encontrado",
			Message: "O canal não existe mais.",
		})
	case errors.Is(err, ErrConflict):
		c.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationWarning,
			Title:   "⚠️ Canal já atualizado",
			Message: "O status do canal foi alterado por outra pessoa. Tente novamente.",
		})
	default:
		c.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationError,
			Title:   "❌ Erro",
			Message: message,
		})
	}
}

func cloneChannels(channels []entities.Channel) []entities.Channel {
	result := make([]entities.Channel, len(channels))
	copy(result, channels)
	return result
}
