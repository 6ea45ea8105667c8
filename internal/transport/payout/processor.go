// Package payout отправляет ожидающие выплаты внешнему провайдеру.
package payout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/service"
	"github.com/fsdevblog/venuepay/internal/transport/payout/client"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultLimitPerIteration uint = 100
	defaultPayoutWorkers     uint = 10
)

// Processor в цикле забирает выплаты со статусом pending и проводит их через
// API провайдера выплат.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	payoutWorkers     uint
}

// New создает новый экземпляр процессора выплат.
func New(svs Servicer, apiBaseURL string, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "payout",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client.New(apiBaseURL),
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		payoutWorkers:     defaultPayoutWorkers,
	}
}

// SetLimitPerIteration устанавливает кол-во выплат, обрабатываемых в одной итерации обработчика.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetPayoutWorkers устанавливает кол-во воркеров работающих с выплатами.
func (p *Processor) SetPayoutWorkers(workers uint) *Processor {
	p.payoutWorkers = workers
	return p
}

// Run запускает обработку выплат в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации цикла запрашивает через сервисный слой список выплат в статусе
//     pending. Объем списка лимитируется через SetLimitPerIteration.
//  2. Для каждой итерации создаются N воркеров (кол-во настраивается через SetPayoutWorkers),
//     которые отправляют распоряжения на API провайдера выплат.
//  3. Результат работы фиксируется через сервисный слой: успех закрывает выплату,
//     ошибка оставляет ее в очереди до исчерпания лимита попыток.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"payoutWorkers":     p.payoutWorkers,
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil {
				if !errors.Is(err, ErrNoPayouts) {
					p.l.WithError(err).Error("process error")
				}
				time.Sleep(time.Second) // небольшая пауза чтоб не заддосить БД.
			}
		}
	}
}

// process выполняет цикл обработки выплат: получение списка, отправка провайдеру
// и обновление статусов. Возвращает ErrNoPayouts если очередь пуста.
func (p *Processor) process(ctx context.Context) error {
	payouts, payoutsErr := p.produce(ctx)
	if payoutsErr != nil {
		return fmt.Errorf("process: %w", payoutsErr)
	}

	results := p.runWorkers(ctx, payouts)
	if len(results) == 0 {
		return nil
	}

	var updateArgs = make([]service.UpdatePayoutArgs, 0, len(results))
	for _, result := range results {
		// статус ACCEPTED значит что провайдер деньги еще не перевел: выплату
		// не трогаем, воркер переотправит ее в следующей итерации (запросы
		// идемпотентны по reference).
		if result.Error == nil && result.Status == client.StatusAccepted {
			continue
		}
		updateArgs = append(updateArgs, service.UpdatePayoutArgs{
			Error:         result.Error,
			TransactionID: result.Transaction.ID,
			Attempts:      result.Transaction.PayoutAttempts,
		})
	}
	if len(updateArgs) == 0 {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if updErr := p.svs.UpdatePayouts(reqCtx, updateArgs); updErr != nil {
		return fmt.Errorf("process: %s", updErr.Error())
	}

	return nil
}

// workerResult представляет результат работы воркера по отправке выплаты.
type workerResult struct {
	WorkerID    uint
	Transaction *domain.AccountTransaction
	Error       error
	Status      client.StatusType
}

// runWorkers запускает параллельных воркеров для отправки выплат и ожидает конца их работы.
// Реализует паттерн fan-out/fan-in для параллельной обработки запросов.
func (p *Processor) runWorkers(ctx context.Context, payouts []domain.AccountTransaction) []workerResult {
	var taskCh = make(chan *domain.AccountTransaction, len(payouts))

	for _, payout := range payouts {
		taskCh <- &payout
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.payoutWorkers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(payouts))

	for i := range p.payoutWorkers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(payouts))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":        result.WorkerID,
			"transactionID": result.Transaction.ID,
			"attempt":       result.Transaction.PayoutAttempts + 1,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("send payout")
		} else {
			l.WithField("status", result.Status).Info("Success")
		}
		results = append(results, *result)
	}
	return results
}

// worker обрабатывает выплаты из канала, отправляет их провайдеру и публикует результаты.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.AccountTransaction,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask отправляет выплату провайдеру, в случае получения ошибки 429
// ждет N секунд указанные в заголовке ответа.
func (p *Processor) processWorkerTask(
	ctx context.Context,
	workerID uint,
	task *domain.AccountTransaction,
) *workerResult {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		resp, err := p.client.SendPayout(reqCtx, client.Request{
			Reference: task.Reference.String(),
			AccountID: task.AccountID,
			Amount:    task.Amount,
		})
		cancel()

		if err != nil {
			result := workerResult{
				WorkerID:    workerID,
				Transaction: task,
			}
			var tooManyReq *client.TooManyRequestError
			if errors.As(err, &tooManyReq) {
				// Проверяем отмену контекста перед спячкой
				select {
				case <-ctx.Done():
					result.Error = ctx.Err()
					return &result
				case <-time.After(tooManyReq.RetryAfter):
					// После паузы делаем повторную попытку
					continue
				}
			}
			result.Error = err
			return &result
		}

		result := workerResult{
			WorkerID:    workerID,
			Transaction: task,
			Status:      resp.Status,
		}
		if resp.Status == client.StatusRejected {
			result.Error = fmt.Errorf("payout %s rejected by provider", task.Reference)
		}
		return &result
	}
}

// produce получает список выплат в статусе pending.
// Возвращает ErrNoPayouts, если очередь пуста.
func (p *Processor) produce(ctx context.Context) ([]domain.AccountTransaction, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	payouts, payoutsErr := p.svs.PendingPayouts(produceCtx, p.limitPerIteration)
	if payoutsErr != nil {
		return nil, fmt.Errorf("produce: %w", payoutsErr)
	}

	if len(payouts) == 0 {
		return nil, ErrNoPayouts
	}
	return payouts, nil
}
