package xcrypto

import "math/big"

// productFoldThreshold is the element count below which Product folds the
// slice linearly instead of building a balanced tree. Below this size the
// tree's recursion overhead outweighs the asymptotic win.
const productFoldThreshold = 64

// Product computes the product of nums. For small inputs it folds them
// left to right; for larger inputs it recurses into a balanced
// divide-and-conquer tree, multiplying two roughly-equal-sized halves and
// combining their results. Both produce the same value, but the tree
// keeps operand sizes balanced during the multiplication, which is
// asymptotically cheaper than repeatedly multiplying a huge running
// product by one small factor (O(n log n) bit operations vs O(n^2) for n
// b-bit factors).
func Product(nums []*big.Int) *big.Int {
	switch len(nums) {
	case 0:
		return big.NewInt(1)
	case 1:
		return new(big.Int).Set(nums[0])
	}
	if len(nums) < productFoldThreshold {
		acc := new(big.Int).Set(nums[0])
		for _, n := range nums[1:] {
			acc.Mul(acc, n)
		}
		return acc
	}
	mid := len(nums) / 2
	left := Product(nums[:mid])
	right := Product(nums[mid:])
	return left.Mul(left, right)
}
