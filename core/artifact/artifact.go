// Package artifact は変換に渡される共役データ（ラスター画像、マスク、
// バウンディングボックス、キーポイント）の閉じた型体系を提供します。
//
// アーティファクトの種類は閉じたタグ付きバリアントです。来歴（どの変換が
// どのパラメータで適用されたか）は各アーティファクト自身が保持します。
package artifact

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/pkg/errors"
)

// Kind はアーティファクトの種類を表す
type Kind int

const (
	// KindRaster はラスター画像
	KindRaster Kind = iota
	// KindMask は単一のラベルマスク
	KindMask
	// KindMaskList はマスクのリスト
	KindMaskList
	// KindBoxList はバウンディングボックスのリスト
	KindBoxList
	// KindKeypointList はキーポイントのリスト
	KindKeypointList
	// KindOpaque は認識されない不透明な値（来歴を保持できない）
	KindOpaque
)

// String はKindの名前を返す
func (k Kind) String() string {
	switch k {
	case KindRaster:
		return "raster"
	case KindMask:
		return "mask"
	case KindMaskList:
		return "mask-list"
	case KindBoxList:
		return "box-list"
	case KindKeypointList:
		return "keypoint-list"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// 標準ターゲットキー。ルーターはこれらの正準名でapply-variantを引き当てる。
const (
	KeyImage     = "image"
	KeyMask      = "mask"
	KeyMasks     = "masks"
	KeyBBoxes    = "bboxes"
	KeyKeypoints = "keypoints"
)

// GeometrySize はボックス・キーポイントの幾何ヘッドの要素数
const GeometrySize = 4

// Geometry はボックス（xmin, ymin, xmax, ymax）またはキーポイント
// （x, y, angle, scale）の幾何ヘッドを表す。座標はピクセル座標系。
type Geometry [GeometrySize]float64

// Box は4要素以上の数値列。先頭4要素が幾何ヘッド、残りは変換で
// 変化してはならない不透明なペイロード（クラスラベルなど）。
type Box []float64

// Head はボックスの幾何ヘッドを返す。要素数が4未満の場合はエラー。
func (b Box) Head() (Geometry, error) {
	if len(b) < GeometrySize {
		return Geometry{}, errors.NewInvalidArgumentError("box", "must have at least 4 elements", len(b))
	}
	var g Geometry
	copy(g[:], b[:GeometrySize])
	return g, nil
}

// Tail はボックスの幾何ヘッドに続くペイロードを返す
func (b Box) Tail() []float64 {
	if len(b) <= GeometrySize {
		return nil
	}
	return b[GeometrySize:]
}

// Keypoint はボックスと同じ形状の数値列。幾何ヘッドは（x, y, angle, scale）。
type Keypoint []float64

// Head はキーポイントの幾何ヘッドを返す。要素数が4未満の場合はエラー。
func (k Keypoint) Head() (Geometry, error) {
	if len(k) < GeometrySize {
		return Geometry{}, errors.NewInvalidArgumentError("keypoint", "must have at least 4 elements", len(k))
	}
	var g Geometry
	copy(g[:], k[:GeometrySize])
	return g, nil
}

// Tail はキーポイントの幾何ヘッドに続くペイロードを返す
func (k Keypoint) Tail() []float64 {
	if len(k) <= GeometrySize {
		return nil
	}
	return k[GeometrySize:]
}

// Value はバンドルに入る1つのアーティファクトを表す。
// 実装はこのパッケージ内の閉じた集合に限られる。
type Value interface {
	// Kind はアーティファクトの種類を返す
	Kind() Kind
	// Provenance は適用済み変換の履歴を適用順で返す（未適用ならnil）
	Provenance() []Entry
	// history は遅延確保された履歴スロットを返す。
	// 履歴を保持できない種類はnilを返す。
	history() *History
}

// Bundle はアーティファクトキーから値へのマッピング。
// キーの欠落は合法であり、nil値はそのまま素通しされる。
type Bundle map[string]Value

// Clone はバンドルの浅いコピーを返す
func (b Bundle) Clone() Bundle {
	out := make(Bundle, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Raster はラスター画像アーティファクト
type Raster struct {
	Data *mat.Dense
	hist *History
}

// NewRaster は新しいラスターアーティファクトを作成する
func NewRaster(data *mat.Dense) *Raster {
	return &Raster{Data: data}
}

// Kind はKindRasterを返す
func (r *Raster) Kind() Kind { return KindRaster }

// Provenance は適用済み変換の履歴を返す
func (r *Raster) Provenance() []Entry { return r.hist.Entries() }

func (r *Raster) history() *History {
	if r.hist == nil {
		r.hist = &History{}
	}
	return r.hist
}

// WithData は同じ履歴（のコピー）を引き継いだ新しいラスターを返す
func (r *Raster) WithData(data *mat.Dense) *Raster {
	return &Raster{Data: data, hist: r.hist.clone()}
}

// Mask は単一のラベルマスクアーティファクト
type Mask struct {
	Data *mat.Dense
	hist *History
}

// NewMask は新しいマスクアーティファクトを作成する
func NewMask(data *mat.Dense) *Mask {
	return &Mask{Data: data}
}

// Kind はKindMaskを返す
func (m *Mask) Kind() Kind { return KindMask }

// Provenance は適用済み変換の履歴を返す
func (m *Mask) Provenance() []Entry { return m.hist.Entries() }

func (m *Mask) history() *History {
	if m.hist == nil {
		m.hist = &History{}
	}
	return m.hist
}

// WithData は同じ履歴（のコピー）を引き継いだ新しいマスクを返す
func (m *Mask) WithData(data *mat.Dense) *Mask {
	return &Mask{Data: data, hist: m.hist.clone()}
}

// MaskList はマスクのリストアーティファクト
type MaskList struct {
	Items []*mat.Dense
	hist  *History
}

// NewMaskList は新しいマスクリストアーティファクトを作成する
func NewMaskList(items []*mat.Dense) *MaskList {
	return &MaskList{Items: items}
}

// Kind はKindMaskListを返す
func (l *MaskList) Kind() Kind { return KindMaskList }

// Provenance は適用済み変換の履歴を返す
func (l *MaskList) Provenance() []Entry { return l.hist.Entries() }

func (l *MaskList) history() *History {
	if l.hist == nil {
		l.hist = &History{}
	}
	return l.hist
}

// WithItems は同じ履歴（のコピー）を引き継いだ新しいマスクリストを返す
func (l *MaskList) WithItems(items []*mat.Dense) *MaskList {
	return &MaskList{Items: items, hist: l.hist.clone()}
}

// BoxList はバウンディングボックスのリストアーティファクト
type BoxList struct {
	Items []Box
	hist  *History
}

// NewBoxList は新しいボックスリストアーティファクトを作成する
func NewBoxList(items []Box) *BoxList {
	return &BoxList{Items: items}
}

// Kind はKindBoxListを返す
func (l *BoxList) Kind() Kind { return KindBoxList }

// Provenance は適用済み変換の履歴を返す
func (l *BoxList) Provenance() []Entry { return l.hist.Entries() }

func (l *BoxList) history() *History {
	if l.hist == nil {
		l.hist = &History{}
	}
	return l.hist
}

// WithItems は同じ履歴（のコピー）を引き継いだ新しいボックスリストを返す
func (l *BoxList) WithItems(items []Box) *BoxList {
	return &BoxList{Items: items, hist: l.hist.clone()}
}

// KeypointList はキーポイントのリストアーティファクト
type KeypointList struct {
	Items []Keypoint
	hist  *History
}

// NewKeypointList は新しいキーポイントリストアーティファクトを作成する
func NewKeypointList(items []Keypoint) *KeypointList {
	return &KeypointList{Items: items}
}

// Kind はKindKeypointListを返す
func (l *KeypointList) Kind() Kind { return KindKeypointList }

// Provenance は適用済み変換の履歴を返す
func (l *KeypointList) Provenance() []Entry { return l.hist.Entries() }

func (l *KeypointList) history() *History {
	if l.hist == nil {
		l.hist = &History{}
	}
	return l.hist
}

// WithItems は同じ履歴（のコピー）を引き継いだ新しいキーポイントリストを返す
func (l *KeypointList) WithItems(items []Keypoint) *KeypointList {
	return &KeypointList{Items: items, hist: l.hist.clone()}
}

// Opaque は認識されない値のアーティファクト。来歴は保持できない。
type Opaque struct {
	Data interface{}
}

// NewOpaque は新しい不透明アーティファクトを作成する
func NewOpaque(data interface{}) *Opaque {
	return &Opaque{Data: data}
}

// Kind はKindOpaqueを返す
func (o *Opaque) Kind() Kind { return KindOpaque }

// Provenance は常にnilを返す
func (o *Opaque) Provenance() []Entry { return nil }

func (o *Opaque) history() *History { return nil }
