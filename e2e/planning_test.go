//go:build e2e

package e2e

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kessho-pm/kessho/internal/target"
	"github.com/kessho-pm/kessho/internal/transaction"
)

func planningTests() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("scenario 1: an up-to-date install collapses to an empty plan", func() {
		store, resolver := newFixtureStore(GinkgoT().TempDir(), singlePackageDoc)
		Expect(store.Install(ctx, key("a"), target.System)).To(Succeed())

		tx, err := transaction.New(ctx, store, resolver, []transaction.PackageAction{
			transaction.Install(key("a"), target.System),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(tx.Actions()).To(BeEmpty())
	})

	It("scenario 2: installing a package expands its missing dependency first", func() {
		store, resolver := newFixtureStore(GinkgoT().TempDir(), twoPackageDoc)

		tx, err := transaction.New(ctx, store, resolver, []transaction.PackageAction{
			transaction.Install(key("a"), target.System),
		})
		Expect(err).NotTo(HaveOccurred())

		actions := tx.Actions()
		Expect(actions).To(HaveLen(2))
		Expect(actions[0].ID).To(Equal(key("b")))
		Expect(actions[1].ID).To(Equal(key("a")))
	})

	It("scenario 3: a direct contradiction is rejected", func() {
		store, resolver := newFixtureStore(GinkgoT().TempDir(), singlePackageDoc)

		_, err := transaction.New(ctx, store, resolver, []transaction.PackageAction{
			transaction.Install(key("a"), target.User),
			transaction.Uninstall(key("a"), target.User),
		})
		Expect(err).To(HaveOccurred())
		var txErr *transaction.PackageTransactionError
		Expect(err).To(BeAssignableToTypeOf(txErr))
		Expect(err.(*transaction.PackageTransactionError).Kind).To(Equal(transaction.KindActionContradiction))
	})

	It("scenario 4: a contradiction against an implied dependency is rejected", func() {
		store, resolver := newFixtureStore(GinkgoT().TempDir(), twoPackageDoc)

		_, err := transaction.New(ctx, store, resolver, []transaction.PackageAction{
			transaction.Install(key("a"), target.System),
			transaction.Uninstall(key("b"), target.System),
		})
		Expect(err).To(HaveOccurred())
		txErr, ok := err.(*transaction.PackageTransactionError)
		Expect(ok).To(BeTrue())
		Expect(txErr.Kind).To(Equal(transaction.KindActionContradiction))
		Expect(txErr.Contradiction).To(Equal(key("b")))
	})
}
