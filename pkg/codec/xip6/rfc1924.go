package xip6

import (
	"fmt"
	"math/big"
)

// rfc1924Alphabet 是 RFC 1924 规定的 85 字符字母表，顺序固定：
// 数字、大写、小写，最后是规定顺序的标点集合。
const rfc1924Alphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+-;<=>?@^_`{|}~"

// rfc1924Width 是编码的固定宽度。
const rfc1924Width = 20

// rfc1924Rev 是解码用的反查表，进程启动时静态构建，之后只读。
// 不在表中的字节值为 -1。
var rfc1924Rev = buildRFC1924Rev()

func buildRFC1924Rev() (rev [256]int8) {
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(rfc1924Alphabet); i++ {
		rev[rfc1924Alphabet[i]] = int8(i)
	}
	return rev
}

var big85 = big.NewInt(85)

// ToRFC1924 将 128 位整数编码为 RFC 1924 base-85 文本。
// 最高位数字在前，左侧用字母表的零字符（'0'）补齐到固定 20 字符。
// v 为 nil 或超出 [0, 2^128-1] 时返回 [ErrValueOutOfRange]。
//
//	ToRFC1924(v) // "4)+k&C#VzJ4br>0wv%Yp"
func ToRFC1924(v *big.Int) (string, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return "", fmt.Errorf("%w: %v", ErrValueOutOfRange, v)
	}

	var out [rfc1924Width]byte
	for i := range out {
		out[i] = '0'
	}

	rem := new(big.Int)
	r := new(big.Int).Set(v)
	for i := rfc1924Width - 1; r.Sign() > 0; i-- {
		r.DivMod(r, big85, rem)
		out[i] = rfc1924Alphabet[rem.Int64()]
	}
	return string(out[:]), nil
}

// FromRFC1924 将 RFC 1924 base-85 文本解码为 128 位整数。
// s 必须恰好 20 字符且全部取自字母表；字母表检查失败或解码值
// 超过 2^128-1 时返回 [ErrInvalidRFC1924]，从不 panic。
func FromRFC1924(s string) (*big.Int, error) {
	if len(s) != rfc1924Width {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidRFC1924, len(s))
	}

	v := new(big.Int)
	for i := 0; i < len(s); i++ {
		d := rfc1924Rev[s[i]]
		if d < 0 {
			return nil, fmt.Errorf("%w: byte %q", ErrInvalidRFC1924, s[i])
		}
		v.Mul(v, big85)
		v.Add(v, big.NewInt(int64(d)))
	}
	if v.Cmp(MaxIP) > 0 {
		return nil, fmt.Errorf("%w: value overflows 128 bits", ErrInvalidRFC1924)
	}
	return v, nil
}
