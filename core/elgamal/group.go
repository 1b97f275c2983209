// Package elgamal implements textbook multiplicative ElGamal over Z_p*:
// group generation (safe-prime, plain cyclic and simple modes), key pairs,
// encryption of single numbers and of arbitrary byte payloads split into
// fixed-size blocks.
package elgamal

import (
	"context"
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"

	"github.com/mr-shifu/elgamal-lib/core/math/numtheory"
	"github.com/mr-shifu/elgamal-lib/core/math/sample"
)

var (
	one   = big.NewInt(1)
	eight = big.NewInt(8)
)

// Group describes one multiplicative group Z_modulo*. A Group is immutable
// after generation; parties share it by value (see Serialize/DeserializeGroup)
// and derive their own key pairs from it.
type Group struct {
	// Modulo is the group modulus: a probable prime in the safe and cyclic
	// modes, an arbitrary odd-ish integer in the simple mode.
	Modulo *big.Int
	// Order is Modulo - 1 by construction in all three modes.
	Order *big.Int
	// OrderFactorization is the complete factorization of Order. It is only
	// populated by GenerateSafeGroup, where it backs the primitive-root
	// construction; the other modes leave it empty.
	OrderFactorization numtheory.Factorization
	// Generator is a true primitive root in the safe mode and only a
	// heuristic generator in the other modes.
	Generator *big.Int
	// BitLen is the actual bit length of Modulo, which can exceed the
	// requested size in the safe mode.
	BitLen int
	// ByteLen is ⌈BitLen/8⌉. Plaintext blocks of ByteLen-1 bytes are
	// guaranteed smaller than Modulo; ciphertext blocks take ByteLen bytes.
	ByteLen int
}

// GenerateSafeGroup generates Z_p* for a safe-ish prime p = 2kq + 1 with q
// prime, of roughly the requested bit length. Because the factorization of
// p - 1 = 2kq is known, the returned generator is a true primitive root.
//
// The search is unbounded; ctx cancels it between candidates.
func GenerateSafeGroup(ctx context.Context, rand io.Reader, bits int) (*Group, error) {
	bigNumber, err := sample.RandomBigInt(rand, bits)
	if err != nil {
		return nil, err
	}

	q, err := numtheory.NextPrime(ctx, bigNumber)
	if err != nil {
		return nil, err
	}

	// Candidates are p = 2kq + 1 for k = 1, 2, …: each step adds 2q.
	// The prime list is sieved once, from the first candidate.
	twoQ := new(big.Int).Lsh(q, 1)
	p := new(big.Int).Add(twoQ, one)
	k := int64(1)

	primes := numtheory.SieveForAlmostDeterministicMillerRabin(p)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if numtheory.FastPrimalityTest(p, primes, primes) {
			break
		}
		p.Add(p, twoQ)
		k++
	}

	// p - 1 = 2kq: factoring the small cofactor 2k and appending (q, 1)
	// completes the factorization of the order.
	factorization := numtheory.FactorTrialDivision(big.NewInt(2 * k))
	factorization = append(factorization, numtheory.PrimePower{Prime: q, Exponent: 1})

	generator := numtheory.PrimitiveRoot(factorization, p)

	bitLen := p.BitLen()
	return &Group{
		Modulo:             p,
		Order:              new(big.Int).Sub(p, one),
		OrderFactorization: factorization,
		Generator:          generator,
		BitLen:             bitLen,
		ByteLen:            (bitLen + 7) / 8,
	}, nil
}

// GenerateGroup generates Z_p* for a probable prime p of the requested bit
// length. The generator is a uniformly random residue, not verified to
// generate the full group, and the order factorization is left empty; this is
// a known weaker-security mode.
func GenerateGroup(ctx context.Context, rand io.Reader, bits int) (*Group, error) {
	bigNumber, err := sample.RandomBigInt(rand, bits)
	if err != nil {
		return nil, err
	}

	p, err := numtheory.NextPrime(ctx, bigNumber)
	if err != nil {
		return nil, err
	}

	generator, err := sample.RandomInRange(rand, new(big.Int), new(big.Int).Sub(p, one))
	if err != nil {
		return nil, err
	}

	bitLen := p.BitLen()
	return &Group{
		Modulo:    p,
		Order:     new(big.Int).Sub(p, one),
		Generator: generator,
		BitLen:    bitLen,
		ByteLen:   (bitLen + 7) / 8,
	}, nil
}

// GenerateSimpleGroup generates Z_n for a random n of the requested bit
// length with no primality guarantee at all. The generator is the smallest
// element ≥ 2 coprime to n. This is the weakest mode; Order is merely an
// upper bound on the true group order.
func GenerateSimpleGroup(rand io.Reader, bits int) (*Group, error) {
	modulo, err := sample.RandomBigInt(rand, bits)
	if err != nil {
		return nil, err
	}

	generator, err := sample.RandomInRange(rand, big.NewInt(2), new(big.Int).Sub(modulo, big.NewInt(2)))
	if err != nil {
		return nil, err
	}
	for numtheory.Euclidean(generator, modulo).Cmp(one) != 0 {
		generator.Add(generator, one)
	}

	bitLen := modulo.BitLen()
	return &Group{
		Modulo:    modulo,
		Order:     new(big.Int).Sub(modulo, one),
		Generator: generator,
		BitLen:    bitLen,
		ByteLen:   (bitLen + 7) / 8,
	}, nil
}

// Validate checks the structural invariants of a prime-modulus group: the
// modulus is probably prime, the order is modulo - 1, the generator is in
// range and generator^order ≡ 1. When the order factorization is present its
// product must equal the order and its last factor (the safe-prime q) must be
// prime. Simple groups fail Validate by design.
func (g *Group) Validate() error {
	if g == nil || g.Modulo == nil || g.Order == nil || g.Generator == nil {
		return ErrNotGenerated
	}

	primes := numtheory.SieveForAlmostDeterministicMillerRabin(g.Modulo)
	if !numtheory.FastPrimalityTest(g.Modulo, primes, primes) {
		return errors.New("elgamal: group modulo is not prime")
	}

	if new(big.Int).Sub(g.Modulo, one).Cmp(g.Order) != 0 {
		return errors.New("elgamal: group order is not modulo - 1")
	}

	if g.Generator.Sign() <= 0 || g.Generator.Cmp(g.Modulo) >= 0 {
		return errors.New("elgamal: generator out of range")
	}
	if numtheory.ModularExponentiation(g.Generator, g.Order, g.Modulo).Cmp(one) != 0 {
		return errors.New("elgamal: generator^order is not 1")
	}

	if len(g.OrderFactorization) > 0 {
		if g.OrderFactorization.Product().Cmp(g.Order) != 0 {
			return errors.New("elgamal: order factorization does not multiply back to the order")
		}

		q := g.OrderFactorization[len(g.OrderFactorization)-1].Prime
		qPrimes := numtheory.SieveForAlmostDeterministicMillerRabin(q)
		if !numtheory.FastPrimalityTest(q, qPrimes, qPrimes) {
			return errors.New("elgamal: safe-prime cofactor q is not prime")
		}
	}

	return nil
}

// Fingerprint returns a 32-byte blake3 digest binding the group parameters.
// Key pairs and envelopes carry it so that material from a different group is
// rejected instead of producing garbage.
func (g *Group) Fingerprint() []byte {
	h := blake3.New()
	_, _ = h.WriteString("elgamal-group")
	writeLengthPrefixed(h, g.Modulo.Bytes())
	writeLengthPrefixed(h, g.Order.Bytes())
	writeLengthPrefixed(h, g.Generator.Bytes())
	return h.Sum(nil)
}

func writeLengthPrefixed(h *blake3.Hasher, b []byte) {
	n := len(b)
	_, _ = h.Write([]byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
	_, _ = h.Write(b)
}

// Equal reports whether two groups have identical parameters.
func (g *Group) Equal(other *Group) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.Modulo.Cmp(other.Modulo) == 0 &&
		g.Order.Cmp(other.Order) == 0 &&
		g.Generator.Cmp(other.Generator) == 0
}

type primePowerSerialized struct {
	Prime    []byte
	Exponent int
}

type groupSerialized struct {
	Modulo        []byte
	Order         []byte
	Generator     []byte
	Factorization []primePowerSerialized
	BitLen        int
	ByteLen       int
}

// Serialize encodes the group for out-of-band transfer to another party.
func (g *Group) Serialize() ([]byte, error) {
	if g == nil || g.Modulo == nil || g.Order == nil || g.Generator == nil {
		return nil, ErrNotGenerated
	}

	gs := groupSerialized{
		Modulo:    g.Modulo.Bytes(),
		Order:     g.Order.Bytes(),
		Generator: g.Generator.Bytes(),
		BitLen:    g.BitLen,
		ByteLen:   g.ByteLen,
	}
	for _, pp := range g.OrderFactorization {
		gs.Factorization = append(gs.Factorization, primePowerSerialized{
			Prime:    pp.Prime.Bytes(),
			Exponent: pp.Exponent,
		})
	}

	return cbor.Marshal(gs)
}

// DeserializeGroup decodes a group produced by Serialize.
func DeserializeGroup(data []byte) (*Group, error) {
	var gs groupSerialized
	if err := cbor.Unmarshal(data, &gs); err != nil {
		return nil, errors.WithMessage(err, "elgamal: deserialize group")
	}

	g := &Group{
		Modulo:    new(big.Int).SetBytes(gs.Modulo),
		Order:     new(big.Int).SetBytes(gs.Order),
		Generator: new(big.Int).SetBytes(gs.Generator),
		BitLen:    gs.BitLen,
		ByteLen:   gs.ByteLen,
	}
	for _, pp := range gs.Factorization {
		g.OrderFactorization = append(g.OrderFactorization, numtheory.PrimePower{
			Prime:    new(big.Int).SetBytes(pp.Prime),
			Exponent: pp.Exponent,
		})
	}

	return g, nil
}
