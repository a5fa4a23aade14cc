//go:build e2e

package e2e

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kessho-pm/kessho/internal/target"
	"github.com/kessho-pm/kessho/internal/transaction"
)

func executionTests() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("scenario 5: a failed install stops the stream before the next action", func() {
		store, resolver := brokenReceiptStore(GinkgoT().TempDir(), twoPackageDoc)

		tx, err := transaction.New(ctx, store, resolver, []transaction.PackageAction{
			transaction.Install(key("a"), target.System),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(tx.Actions()).To(HaveLen(2))

		_, events := tx.Process(ctx)

		var kinds []transaction.TransactionEventKind
		for event := range events {
			kinds = append(kinds, event.Kind)
		}

		Expect(kinds).To(Equal([]transaction.TransactionEventKind{
			transaction.EventInstalling,
			transaction.EventError,
		}))
	})

	It("scenario 6: cancelling after the first action's outcome stops before the second", func() {
		store, resolver := newFixtureStore(GinkgoT().TempDir(), twoPackageDoc)

		tx, err := transaction.New(ctx, store, resolver, []transaction.PackageAction{
			transaction.Install(key("a"), target.System),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(tx.Actions()).To(HaveLen(2))

		canceler, events := tx.Process(ctx)

		first, ok := <-events
		Expect(ok).To(BeTrue())
		Expect(first.Kind).To(Equal(transaction.EventInstalling))
		Expect(first.Package).To(Equal(key("b")))

		// store.Install(b) is still running its real file I/O (flock,
		// write, rename) when this goroutine resumes after the channel
		// receive, so cancelling right away reliably lands before the
		// producer's next select, matching the "cancel between actions"
		// point Process documents.
		canceler.Cancel()

		var rest []transaction.TransactionEvent
		for event := range events {
			rest = append(rest, event)
		}
		Expect(rest).To(BeEmpty())
	})
}
