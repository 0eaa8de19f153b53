package sim

import "math"

// DefaultSeed is the factory starting cursor. It lies past the end of
// RandomTable, so the first draw wraps to index 0.
const DefaultSeed uint64 = 123456

// RandomTable is the fixed stimulus table behind PseudoRandomSource.
// Its contents and the wrap rule in Next are part of the reproducibility
// contract: changing either changes every recorded run.
var RandomTable = [60]uint64{
	4082856971599685620, 263328434869347407, 7576667847654208308,
	12684192323921937922, 16181197760313166074, 4993000259016286523,
	7777360851611472270, 12684858740337089069, 13792758530809556226,
	9705484450158675180, 2356434852560640881, 12991886417691552848,
	14262153250304362608, 9721139077091098879, 5340259883797775994,
	1910912361441097101, 551951547015110708, 13388081104731861589,
	14561835204930253753, 1145348537966955514, 4635642057608043709,
	247279847734376319, 14475454185974473037, 5356791289287893950,
	5394722332071153439, 2763708184518272260, 4052692358703354570,
	662762972601170563, 15525522150426148273, 8713541385896213327,
	7744339156133814078, 1179486564352551839, 8186741526410188083,
	17813459038272261655, 6703836692820609876, 11887323209793110945,
	14743971615791178849, 7105582857490582895, 4947742274484715779,
	16548987461410137580, 1906977537585733016, 3491468108978074261,
	7646978571229541228, 14368653334384094176, 12561872433439601078,
	17084379079299463301, 9671403567356947947, 9780812539195315877,
	1911346566344532911, 8369580830371596415, 14706596080775791548,
	15189009629689132555, 9125462606164200898, 12481310361510826705,
	542518502924445949, 14147427910115416641, 12663770586276171547,
	10758265674907009008, 17891922577438267520, 14061335016435054781,
}

// Probability thresholds, expressed as fractions of the full uint64 range.
const (
	halfThreshold = math.MaxUint64 / 2    // draw >= halfThreshold fires with p = 1/2
	rareThreshold = math.MaxUint64 / 5000 // draw < rareThreshold fires with p = 1/5000
)

// PseudoRandomSource is a deterministic, table-backed stream of uint64 values.
//
// Next wraps the cursor to 0 when it is at or past the end of RandomTable,
// returns the entry under the cursor, then advances the cursor by one.
//
// Thread-safety: NOT thread-safe. A source is owned by exactly one
// Simulator and must only be used from its goroutine.
type PseudoRandomSource struct {
	cursor uint64
	draws  int64
}

// NewPseudoRandomSource creates a source whose first draw starts at cursor.
func NewPseudoRandomSource(cursor uint64) *PseudoRandomSource {
	return &PseudoRandomSource{cursor: cursor}
}

// Next returns the next value of the stream.
func (r *PseudoRandomSource) Next() uint64 {
	if r.cursor >= uint64(len(RandomTable)) {
		r.cursor = 0
	}
	v := RandomTable[r.cursor]
	r.cursor++
	r.draws++
	return v
}

// Reset rewinds the source to cursor and clears the draw count.
func (r *PseudoRandomSource) Reset(cursor uint64) {
	r.cursor = cursor
	r.draws = 0
}

// Cursor returns the index the next draw will read (before wrapping).
func (r *PseudoRandomSource) Cursor() uint64 {
	return r.cursor
}

// Draws returns how many values have been consumed since creation or Reset.
func (r *PseudoRandomSource) Draws() int64 {
	return r.draws
}

// coinFlip consumes one draw and reports a 1/2 probability event.
func (r *PseudoRandomSource) coinFlip() bool {
	return r.Next() >= halfThreshold
}

// rare consumes one draw and reports a 1/5000 probability event.
func (r *PseudoRandomSource) rare() bool {
	return r.Next() < rareThreshold
}
