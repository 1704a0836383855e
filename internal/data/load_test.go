package data

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/srliao/hsrcalc/pkg/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const charCSV = `角色,命途,屬性,星數,生命值,攻擊力,防禦力,速度,能量上限,普攻(攻擊)倍率,戰技(攻擊)倍率,行跡(攻擊),行跡(爆率)
希兒,巡獵,量子,5,931,652,363,115,120,100%/110%,200%/220%,28%,12%
,巡獵,量子,5,1,1,1,1,1,,,,
黃泉,虛無,雷,５,1078,698,436,101,140,１００％,,18%,0
`

const lcCSV = `光錐,命途,星數,生命值白值,攻擊力白值,防禦力白值,攻擊力,增攻,增攻類型,增傷,增傷類型,爆擊率,爆擊傷害,減防,減防類型,抗穿,抗穿類型,效果1類型,效果1對象,效果1條件,效果1條件值,效果1數值
於夜色中,巡獵,5,1058,582,463,0,,,6%/7%/8%/9%/10%,普通攻擊/戰技,18%/21%/24%/27%/30%,0,0,,0,,增傷,自身,值(速度)>=,120,12%
`

const relicCSV = `儀器,種類,2p增傷,2p增攻,2p爆擊率,2p減防,4p增傷,4p增攻,4p爆擊率,4p減防,效果1類型,效果1範圍,效果1對象,效果1條件,效果1條件值,效果1數值
繁星璀璨的天才,外圈,10%,0,0,0,0,0,0,10%,,,,,,
太空封印站,內圈,0,12%,0,0,0,0,0,0,增攻,2P,自身,值(速度)>=,120,12%
`

const ratingCSV = `詞條,重要,次要,不需要
暴擊率,2,1,0
暴擊傷害,1,0.5,0
`

const priorityCSV = `角色,詞條,優先
希兒,暴擊率,重要
希兒,暴擊傷害,次要
`

func writeTables(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func requiredTables() map[string]string {
	return map[string]string{
		CharacterFile: charCSV,
		LightConeFile: lcCSV,
		RelicFile:     relicCSV,
	}
}

func TestLoadRequiredOnly(t *testing.T) {
	dir := writeTables(t, requiredTables())

	s, err := NewLoader(dir, nil).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"希兒", "黃泉"}, s.CharacterNames())
	assert.Equal(t, []string{"於夜色中"}, s.LightConeNames())
	assert.Equal(t, []string{"繁星璀璨的天才"}, s.RelicNames(combat.Outer))
	assert.Equal(t, []string{"太空封印站"}, s.RelicNames(combat.Inner))

	//optional tables start empty
	_, ok := s.SubstatRating("暴擊率")
	assert.False(t, ok)
	assert.Empty(t, s.LightConeRecommendations("希兒"))
}

func TestLoadCharacter(t *testing.T) {
	dir := writeTables(t, requiredTables())
	s, err := NewLoader(dir, nil).Load(context.Background())
	require.NoError(t, err)

	c, ok := s.Character("希兒")
	require.True(t, ok)
	assert.Equal(t, combat.Path("巡獵"), c.Path)
	assert.Equal(t, combat.Element("量子"), c.Element)
	assert.Equal(t, 5, c.Rarity)
	assert.Equal(t, 652.0, c.BaseAtk)
	assert.Equal(t, 115.0, c.BaseSpeed)
	assert.Equal(t, combat.Value("100%/110%"), c.Multipliers[combat.ActionAttack])
	assert.Equal(t, combat.Value("200%/220%"), c.Multipliers[combat.ActionSkill])
	_, ok = c.Multipliers[combat.ActionBurst]
	assert.False(t, ok)
	assert.Equal(t, combat.Value("28%"), c.Traces[combat.TraceAtk])
	assert.Equal(t, combat.Value("12%"), c.Traces[combat.TraceCR])
}

func TestLoadFullWidthCells(t *testing.T) {
	dir := writeTables(t, requiredTables())
	s, err := NewLoader(dir, nil).Load(context.Background())
	require.NoError(t, err)

	c, ok := s.Character("黃泉")
	require.True(t, ok)
	assert.Equal(t, 5, c.Rarity)
	assert.Equal(t, combat.Value("100%"), c.Multipliers[combat.ActionAttack])
	assert.True(t, c.Traces[combat.TraceCR].Absent())
}

func TestLoadLightConeDescriptors(t *testing.T) {
	dir := writeTables(t, requiredTables())
	s, err := NewLoader(dir, nil).Load(context.Background())
	require.NoError(t, err)

	l, ok := s.LightCone("於夜色中")
	require.True(t, ok)
	assert.Equal(t, 582.0, l.Atk)
	require.Len(t, l.Effects, 3)

	dmg := l.Effects[0]
	assert.Equal(t, "增傷", dmg.Kind)
	assert.Equal(t, combat.CondAttack, dmg.Condition)
	assert.Equal(t, "普通攻擊/戰技", dmg.ConditionValue)
	assert.Equal(t, combat.FamilyLegacy, dmg.Family)

	cr := l.Effects[1]
	assert.Equal(t, "爆擊率", cr.Kind)
	assert.Empty(t, cr.Condition)

	st := l.Effects[2]
	assert.Equal(t, "增傷", st.Kind)
	assert.Equal(t, "自身", st.Target)
	assert.Equal(t, "值(速度)>=", st.Condition)
	assert.Equal(t, "120", st.ConditionValue)
	assert.Equal(t, combat.FamilyStructured, st.Family)
}

func TestLoadRelicDescriptors(t *testing.T) {
	dir := writeTables(t, requiredTables())
	s, err := NewLoader(dir, nil).Load(context.Background())
	require.NoError(t, err)

	r, ok := s.Relic("繁星璀璨的天才", combat.Outer)
	require.True(t, ok)
	require.Len(t, r.Effects, 2)
	assert.Equal(t, combat.EffectDescriptor{Kind: "增傷", Scope: combat.Scope2P, Value: "10%", Family: combat.FamilyLegacy}, r.Effects[0])
	assert.Equal(t, combat.EffectDescriptor{Kind: "減防", Scope: combat.Scope4P, Value: "10%", Family: combat.FamilyLegacy}, r.Effects[1])

	_, ok = s.Relic("繁星璀璨的天才", combat.Inner)
	assert.False(t, ok)

	in, ok := s.Relic("太空封印站", combat.Inner)
	require.True(t, ok)
	require.Len(t, in.Effects, 2)
	assert.Equal(t, combat.Scope2P, in.Effects[1].Scope)
	assert.Equal(t, "增攻", in.Effects[1].Kind)
}

func TestLoadOptionalTables(t *testing.T) {
	files := requiredTables()
	files[RatingFile] = ratingCSV
	files[PriorityFile] = priorityCSV
	files[LightConeRecFile] = "角色,光錐\n希兒,於夜色中/銀河鐵道之夜\n"
	files[RelicRecFile] = "角色,儀器\n希兒,繁星璀璨的天才、太空封印站\n"
	files[LightConeDescFile] = "光錐,敘述\n於夜色中,描述\n"
	files[RelicDescFile] = "儀器,2P敘述,4P敘述\n繁星璀璨的天才,量子傷害提高10%,無視防禦\n"
	dir := writeTables(t, files)

	s, err := NewLoader(dir, nil).Load(context.Background())
	require.NoError(t, err)

	r, ok := s.SubstatRating("暴擊傷害")
	require.True(t, ok)
	assert.Equal(t, 0.5, r.Coeffs[combat.Secondary])

	p, ok := s.StatPriority("希兒")
	require.True(t, ok)
	assert.Equal(t, combat.Important, p.Of("暴擊率"))
	assert.Equal(t, combat.Secondary, p.Of("暴擊傷害"))
	assert.Equal(t, combat.Unneeded, p.Of("速度"))

	assert.Equal(t, []string{"於夜色中", "銀河鐵道之夜"}, s.LightConeRecommendations("希兒"))
	assert.Equal(t, []string{"繁星璀璨的天才", "太空封印站"}, s.RelicRecommendations("希兒"))
	assert.Equal(t, "描述", s.LightConeDesc("於夜色中"))
	d, ok := s.RelicDesc("繁星璀璨的天才")
	require.True(t, ok)
	assert.Equal(t, "無視防禦", d.Desc4P)
}

func TestLoadMissingRequired(t *testing.T) {
	files := requiredTables()
	delete(files, LightConeFile)
	dir := writeTables(t, files)

	s, err := NewLoader(dir, nil).Load(context.Background())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, combat.ErrDataLoad)
	assert.True(t, strings.Contains(err.Error(), LightConeFile))
}

func TestLoadEmptyRequired(t *testing.T) {
	files := requiredTables()
	files[RelicFile] = "儀器,種類\n"
	dir := writeTables(t, files)

	_, err := NewLoader(dir, nil).Load(context.Background())
	assert.ErrorIs(t, err, combat.ErrDataLoad)
}

func TestLoadCancelled(t *testing.T) {
	dir := writeTables(t, requiredTables())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(dir, nil).Load(ctx)
	assert.ErrorIs(t, err, combat.ErrDataLoad)
}

func TestReadTableShortRows(t *testing.T) {
	rows, err := readTable(strings.NewReader("a,b,c\n1\n\n,,\n4,5,6\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[0].get("c"))
	assert.Equal(t, "6", rows[1].get("c"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a/ b、c"))
	assert.Nil(t, splitList(""))
}

const lcPunctCSV = lcCSV + `舞！舞！舞！,巡獵,4,952,423,396,0,,,0,,0,0,0,,10%,普通攻擊,,,,,
`

func TestLoadLegacyResPenIsVulnerability(t *testing.T) {
	files := requiredTables()
	files[LightConeFile] = lcPunctCSV
	s, err := NewLoader(writeTables(t, files), nil).Load(context.Background())
	require.NoError(t, err)

	l, ok := s.LightCone("舞！舞！舞！")
	require.True(t, ok)
	require.Len(t, l.Effects, 1)
	assert.Equal(t, "易傷", l.Effects[0].Kind)
	assert.Equal(t, "普通攻擊", l.Effects[0].ConditionValue)
	assert.Equal(t, combat.FamilyLegacy, l.Effects[0].Family)

	calc, err := combat.New(s, nil)
	require.NoError(t, err)
	cfg := combat.BuildConfig{
		Character:   "希兒",
		AttackType:  combat.ActionAttack,
		LightCone:   "舞！舞！舞！",
		Superimpose: 1,
		Enemy:       combat.EnemyConfig{Level: 90, ToughnessBroken: true},
	}
	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.LightConeActive)
	assert.Equal(t, 10.0, res.Stats.Vulnerability)
	assert.Equal(t, 0.0, res.Stats.ResistanceReduction)

	//the bonus only applies to the listed attack types
	cfg.AttackType = combat.ActionSkill
	res, err = calc.Calculate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Stats.Vulnerability)
}

func TestLoadKeepsFullWidthNames(t *testing.T) {
	files := requiredTables()
	files[LightConeFile] = lcPunctCSV
	files[LightConeRecFile] = "角色,光錐\n希兒,舞！舞！舞！／於夜色中\n"
	files[LightConeDescFile] = "光錐,敘述\n舞！舞！舞！,行動提前（１６％）\n"
	s, err := NewLoader(writeTables(t, files), nil).Load(context.Background())
	require.NoError(t, err)

	_, ok := s.LightCone("舞！舞！舞！")
	assert.True(t, ok)
	_, ok = s.LightCone("舞!舞!舞!")
	assert.False(t, ok)
	assert.Equal(t, []string{"舞！舞！舞！", "於夜色中"}, s.LightConeRecommendations("希兒"))
	assert.Equal(t, "行動提前（１６％）", s.LightConeDesc("舞！舞！舞！"))

	//numeric cells are still folded before parsing
	l, _ := s.LightCone("舞！舞！舞！")
	assert.Equal(t, 423.0, l.Atk)
}
