package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/lightledger/internal/analysis"
	"github.com/Veraticus/lightledger/internal/cli"
	"github.com/Veraticus/lightledger/internal/model"
)

const maxFeedRecords = 8

var (
	screenStyle = lipgloss.NewStyle().Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.SubtleColor).
			Padding(0, 2)

	selectedCatStyle = lipgloss.NewStyle().Bold(true)
	dimmedCatStyle   = lipgloss.NewStyle().Foreground(cli.SubtleColor)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.state {
	case StateLocked:
		body = m.viewLocked()
	case StateEntry:
		body = m.viewEntry()
	case StateHome:
		body = m.viewHome()
	case StateStats:
		body = m.viewStats()
	}
	return screenStyle.Render(body)
}

func (m Model) viewLocked() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("LightLedger"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("数据保存在本地，极简私密"))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter 进入账本 · a 直接记一笔 · q 退出"))
	return b.String()
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("本月"))
	b.WriteString("\n\n")

	budget := m.store.Budget()
	spent := m.store.TotalSpent()
	p := analysis.Project(budget.Total, spent, time.Now())

	b.WriteString(m.viewWaterline(p))
	b.WriteString("\n\n")

	if m.editBudget {
		b.WriteString(cardStyle.Render("设定预算: " + m.budgetInput.View()))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter 保存 · esc 取消"))
		b.WriteString("\n\n")
	}

	b.WriteString(hintStyle.Render("最近支出"))
	b.WriteString("\n")

	records := m.store.Records()
	if len(records) == 0 {
		b.WriteString(hintStyle.Render("记下一笔支出"))
	} else {
		shown := records
		if len(shown) > maxFeedRecords {
			shown = shown[:maxFeedRecords]
		}
		for _, rec := range shown {
			cat, _ := model.CategoryByID(rec.CategoryID)
			catName := cli.SubtleStyle.Render(cat.Name)
			b.WriteString(fmt.Sprintf("%-20s %s  %s\n",
				rec.Note,
				catName,
				cli.AmountStyle.Render(cli.Yuan(rec.Amount))))
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("a 记一笔 · s 统计 · b 预算 · L 锁定 · q 退出"))
	return b.String()
}

func (m Model) viewWaterline(p analysis.Projection) string {
	statusStyle := cli.StatusStyle(p.Status)

	var b strings.Builder
	b.WriteString(hintStyle.Render("本月剩余可用"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Bold(true).Render(cli.Yuan(p.Remaining)))
	b.WriteString("  ")
	b.WriteString(cli.StatusLabel(p.Status))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s",
		hintStyle.Render("今日额度"),
		cli.Yuan(p.DailyLimit)))
	b.WriteString(fmt.Sprintf("   %s %.0f%%",
		hintStyle.Render("已用"),
		p.PercentSpent))
	b.WriteString("\n")
	b.WriteString(cli.Bar(p.PercentSpent, 32, string(cli.PrimaryColor)))
	return cardStyle.Render(b.String())
}

func (m Model) viewEntry() string {
	var b strings.Builder
	b.WriteString(hintStyle.Render("闪电录入"))
	b.WriteString("\n\n")

	cat := m.selectedCategory()
	catStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color))
	b.WriteString(catStyle.Render("● " + cat.Name))
	b.WriteString("\n")
	b.WriteString(cli.AmountStyle.Render("¥" + m.amount))
	if m.focus == focusAmount {
		b.WriteString(cli.SubtleStyle.Render("▌"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.noteInput.View())
	b.WriteString("\n")
	if m.dispatcher != nil {
		b.WriteString(m.semInput.View())
		b.WriteString("\n")
	} else {
		b.WriteString(hintStyle.Render("(未配置语义识别)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewCategoryRow())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(cli.WarningStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("数字键入金额 · tab 切换 · ←→ 分类 · ctrl+p 识别 · enter 确认 · esc 取消"))
	return b.String()
}

func (m Model) viewCategoryRow() string {
	parts := make([]string, 0, len(m.categories))
	for i, cat := range m.categories {
		if i == m.catIndex {
			style := selectedCatStyle.Foreground(lipgloss.Color(cat.Color))
			parts = append(parts, style.Render("["+cat.Name+"]"))
		} else {
			parts = append(parts, dimmedCatStyle.Render(cat.Name))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewStats() string {
	var b strings.Builder
	b.WriteString(hintStyle.Render("分类概览"))
	b.WriteString("\n\n")

	records := m.store.Records()
	totals := analysis.Aggregate(records, m.categories)
	if len(totals) == 0 {
		b.WriteString(hintStyle.Render("还没有支出"))
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n\n",
			hintStyle.Render("总计"),
			cli.AmountStyle.Render(cli.Yuan(analysis.TotalSpent(records)))))
		for _, ct := range totals {
			catStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ct.Category.Color))
			b.WriteString(fmt.Sprintf("%s  %s  %.0f%%\n",
				catStyle.Render(fmt.Sprintf("%-4s", ct.Category.Name)),
				cli.Yuan(ct.Amount),
				ct.Percentage))
			b.WriteString(cli.Bar(ct.Percentage, 28, ct.Category.Color))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("esc 返回"))
	return b.String()
}
