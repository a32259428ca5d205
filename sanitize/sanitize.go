package sanitize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DefaultMaxDepth é o limite de recursão aplicado quando o chamador não
// informa um valor próprio.
const DefaultMaxDepth = 128

// debugBudget limita a serialização de depuração emitida no fallback de
// profundidade, garantindo término mesmo para estruturas cíclicas.
const debugBudget = 16

// Item sanitiza todos os atributos de um item do DynamoDB em um único
// objeto JSON (map[string]any).
func Item(item map[string]types.AttributeValue, maxDepth int) map[string]any {
	out := make(map[string]any, len(item))
	for name, av := range item {
		out[name] = Value(av, 0, maxDepth)
	}
	return out
}

// Value sanitiza um único AttributeValue em um valor compatível com JSON.
//
// A função é total: qualquer entrada, em qualquer profundidade, produz um
// resultado sem erro. Acima de maxDepth a subárvore restante vira uma
// string de depuração.
func Value(av types.AttributeValue, depth, maxDepth int) any {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if depth > maxDepth {
		return DebugString(av)
	}

	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		return number(v.Value)
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberB:
		return text(v.Value)
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberSS:
		out := make([]any, 0, len(v.Value))
		for _, s := range v.Value {
			out = append(out, s)
		}
		return out
	case *types.AttributeValueMemberNS:
		out := make([]any, 0, len(v.Value))
		for _, n := range v.Value {
			out = append(out, number(n))
		}
		return out
	case *types.AttributeValueMemberBS:
		out := make([]any, 0, len(v.Value))
		for _, b := range v.Value {
			out = append(out, text(b))
		}
		return out
	case *types.AttributeValueMemberL:
		out := make([]any, 0, len(v.Value))
		for _, el := range v.Value {
			out = append(out, Value(el, depth+1, maxDepth))
		}
		return out
	case *types.AttributeValueMemberM:
		out := make(map[string]any, len(v.Value))
		for k, el := range v.Value {
			out[k] = Value(el, depth+1, maxDepth)
		}
		return out
	default:
		// Variante desconhecida do SDK: não falha, degrada para string.
		return DebugString(av)
	}
}

// number converte a representação decimal do DynamoDB em int64 quando o
// valor é integral, ou float64 caso contrário. Valores que não podem ser
// interpretados retornam a string original.
func number(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	// Apenas a faixa de inteiros exatos do float64 vira int64; acima disso
	// o valor já perdeu precisão e permanece float.
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}

// text decodifica um blob binário como UTF-8; sequências inválidas são
// substituídas por U+FFFD em vez de falhar.
func text(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// DebugString produz uma serialização compacta, com orçamento próprio de
// recursão, usada como fallback quando a profundidade máxima é excedida.
func DebugString(av types.AttributeValue) string {
	var sb strings.Builder
	writeDebug(&sb, av, debugBudget)
	return sb.String()
}

func writeDebug(sb *strings.Builder, av types.AttributeValue, budget int) {
	if budget <= 0 {
		sb.WriteString("...")
		return
	}

	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		sb.WriteString(v.Value)
	case *types.AttributeValueMemberS:
		sb.WriteString(strconv.Quote(v.Value))
	case *types.AttributeValueMemberB:
		sb.WriteString(strconv.Quote(text(v.Value)))
	case *types.AttributeValueMemberBOOL:
		sb.WriteString(strconv.FormatBool(v.Value))
	case *types.AttributeValueMemberNULL:
		sb.WriteString("null")
	case *types.AttributeValueMemberSS:
		sb.WriteByte('[')
		for i, s := range v.Value {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(s))
		}
		sb.WriteByte(']')
	case *types.AttributeValueMemberNS:
		sb.WriteByte('[')
		for i, n := range v.Value {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(n)
		}
		sb.WriteByte(']')
	case *types.AttributeValueMemberBS:
		sb.WriteByte('[')
		for i, b := range v.Value {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(text(b)))
		}
		sb.WriteByte(']')
	case *types.AttributeValueMemberL:
		sb.WriteByte('[')
		for i, el := range v.Value {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeDebug(sb, el, budget-1)
		}
		sb.WriteByte(']')
	case *types.AttributeValueMemberM:
		// Chaves ordenadas para manter a saída determinística.
		keys := make([]string, 0, len(v.Value))
		for k := range v.Value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			writeDebug(sb, v.Value[k], budget-1)
		}
		sb.WriteByte('}')
	default:
		fmt.Fprintf(sb, "%T", av)
	}
}
