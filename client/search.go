package client

import (
	"context"
	"sync"
	"time"

	"cats-service/internal/models"
)

// DefaultDebounce определяет паузу между последним изменением фильтра
// и отправкой запроса
const DefaultDebounce = 250 * time.Millisecond

// SearchFunc выполняет один поисковый запрос
type SearchFunc func(ctx context.Context, params models.SearchContainersParams) ([]models.Container, error)

// SearchResult содержит результат одного поискового запроса вместе
// с фильтром, для которого он был получен
type SearchResult struct {
	Params     models.SearchContainersParams
	Containers []models.Container
	Err        error
}

// Searcher выполняет поиск тары с отложенной отправкой: серия быстрых
// изменений фильтра порождает один запрос с итоговым состоянием.
// Новый запрос отменяет предыдущий незавершенный, устаревшие
// результаты не доставляются.
type Searcher struct {
	search   SearchFunc
	debounce time.Duration
	results  chan SearchResult

	mu      sync.Mutex
	timer   *time.Timer
	pending models.SearchContainersParams
	cancel  context.CancelFunc
	seq     uint64
	closed  bool
}

// NewSearcher создает Searcher поверх переданной функции поиска.
// Нулевой debounce заменяется значением по умолчанию.
func NewSearcher(search SearchFunc, debounce time.Duration) *Searcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Searcher{
		search:   search,
		debounce: debounce,
		results:  make(chan SearchResult, 1),
	}
}

// Results возвращает канал, в который доставляются результаты
// последнего актуального запроса
func (s *Searcher) Results() <-chan SearchResult {
	return s.results
}

// Update запоминает новое состояние фильтра и перезапускает отсчет
// паузы. Запрос уйдет только после того, как фильтр перестанет
// меняться.
func (s *Searcher) Update(params models.SearchContainersParams) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.pending = params
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.fire)
}

// Flush отправляет запрос с текущим фильтром немедленно, не дожидаясь
// окончания паузы
func (s *Searcher) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.launchLocked()
}

func (s *Searcher) fire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.launchLocked()
}

// launchLocked отменяет незавершенный запрос и запускает новый
// с текущим фильтром. Вызывается под s.mu.
func (s *Searcher) launchLocked() {
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.seq++

	seq := s.seq
	params := s.pending

	go func() {
		containers, err := s.search(ctx, params)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || seq != s.seq || ctx.Err() != nil {
			return
		}

		// Вытесняем недоставленный результат, чтобы не блокироваться:
		// после вытеснения в буфере гарантированно есть место
		select {
		case <-s.results:
		default:
		}
		s.results <- SearchResult{Params: params, Containers: containers, Err: err}
	}()
}

// Close останавливает таймер, отменяет незавершенный запрос и
// закрывает канал результатов
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	close(s.results)
}
