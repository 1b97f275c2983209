// Command elgamal-demo times safe-group generation and runs an interactive
// encrypt/decrypt round trip between two parties sharing a group.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mr-shifu/elgamal-lib/core/elgamal"
	"github.com/mr-shifu/elgamal-lib/pkg/keystore"
	"github.com/mr-shifu/elgamal-lib/pkg/vault"
)

func main() {
	bits := flag.Int("bits", 1024, "requested bit length of the group modulus")
	trials := flag.Int("trials", 10, "number of group generation timing trials")
	parallel := flag.Int("parallel", 1, "number of concurrent generation workers")
	timeout := flag.Duration("timeout", 0, "overall deadline for group generation (0 = none)")
	flag.Parse()

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	group, err := runTrials(ctx, *bits, *trials, *parallel)
	if err != nil {
		log.Fatalf("group generation failed: %v", err)
	}

	if err := roundTrip(group); err != nil {
		log.Fatalf("round trip failed: %v", err)
	}
}

// runTrials generates trials safe groups, printing progress and the average
// generation time and bit length, and returns the last group for the demo.
func runTrials(ctx context.Context, bits, trials, parallel int) (*elgamal.Group, error) {
	var (
		mu        sync.Mutex
		done      int
		totalTime time.Duration
		totalBits int
		last      *elgamal.Group
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i := 0; i < trials; i++ {
		g.Go(func() error {
			start := time.Now()
			group, err := elgamal.GenerateSafeGroup(ctx, nil, bits)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			done++
			totalTime += elapsed
			totalBits += group.BitLen
			last = group
			fmt.Printf("%.0f%%\n", 100*float64(done)/float64(trials))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nAverage time: %.2fms\nAverage bit length: %.1f\n\n",
		float64(totalTime.Milliseconds())/float64(trials),
		float64(totalBits)/float64(trials))
	fmt.Printf("%d-bit prime\nModulo:\n%s\nGenerator:\n%s\nOrder:\n%s\n\n",
		last.BitLen, last.Modulo, last.Generator, last.Order)

	return last, nil
}

// roundTrip transfers Alice's group to Bob, has Bob generate and store a key
// pair, then encrypts a message from stdin to Bob and decrypts it again.
func roundTrip(aliceGroup *elgamal.Group) error {
	transferred, err := aliceGroup.Serialize()
	if err != nil {
		return err
	}
	bobGroup, err := elgamal.DeserializeGroup(transferred)
	if err != nil {
		return err
	}

	bobKeys, err := elgamal.GenerateKeys(nil, bobGroup)
	if err != nil {
		return err
	}

	store := keystore.NewInMemoryKeystore(vault.NewInMemoryVault())
	keyID, err := store.Import(bobKeys)
	if err != nil {
		return err
	}
	fmt.Printf("stored Bob's key pair as %s\n\n", keyID)

	fmt.Print("Write a message: ")
	reader := bufio.NewReader(os.Stdin)
	message, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	message = message[:len(message)-1]

	fmt.Printf("================\nsent message:\n%s\n================\n", message)

	envelope, err := elgamal.EncryptBytes(nil, aliceGroup, nil, bobKeys.PublicKey(), []byte(message), false)
	if err != nil {
		return err
	}
	fmt.Printf("================\ncipher:\n%s\n================\n", envelope)

	storedKeys, err := store.Get(keyID)
	if err != nil {
		return err
	}
	received, err := elgamal.DecryptBytes(bobGroup, storedKeys, envelope)
	if err != nil {
		return err
	}
	fmt.Printf("================\nreceived message:\n%s\n================\n", string(received))

	return nil
}
