package helper

import (
	"log"
	"sync"

	"event_ticketing/inventory"
	"event_ticketing/model"
)

// LedgerWorker là publisher in-process: nhận SaleEvent qua channel và
// ghi sổ trong goroutine riêng. Dùng khi chạy store memory, không có Redis.
type LedgerWorker struct {
	ledger   inventory.Ledger
	ch       chan inventory.SaleEvent
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func StartLedgerWorker(ledger inventory.Ledger) *LedgerWorker {
	w := &LedgerWorker{
		ledger: ledger,
		ch:     make(chan inventory.SaleEvent, 256),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *LedgerWorker) PublishSale(ev inventory.SaleEvent) {
	w.ch <- ev
}

func (w *LedgerWorker) run() {
	defer w.wg.Done()
	for ev := range w.ch {
		if err := w.ledger.RecordSale(recordFromSale(ev)); err != nil {
			log.Printf("Lỗi ghi sổ sale %s: %v", ev.Code, err)
		}
	}
}

// Stop chặn đến khi các event đã nhận được ghi xong. Gọi nhiều lần vô hại.
func (w *LedgerWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.ch)
		w.wg.Wait()
	})
}

func recordFromSale(ev inventory.SaleEvent) model.PurchaseRecord {
	return model.PurchaseRecord{
		Code:      ev.Code,
		TicketID:  ev.TicketID,
		EventID:   ev.EventID,
		Price:     ev.Price,
		SoldAt:    ev.SoldAt,
		Remaining: ev.Remaining,
	}
}
