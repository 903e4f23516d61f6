package reports

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/ybenali/rental-service/internal/models"
)

// DashboardXML renders the dashboard rollup as an XML report for the
// front office.
func DashboardXML(d *models.Dashboard, now time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	root.CreateAttr("generated", now.Format("2006-01-02"))

	fleet := root.CreateElement("fleet")
	fleet.CreateElement("total").SetText(strconv.Itoa(d.TotalVehicles))
	fleet.CreateElement("rented").SetText(strconv.Itoa(d.RentedVehicles))
	fleet.CreateElement("available").SetText(strconv.Itoa(d.AvailableVehicles))

	finances := root.CreateElement("finances")
	finances.CreateElement("revenue").SetText(d.Revenue.StringFixed(2))
	finances.CreateElement("receivables").SetText(d.Receivables.StringFixed(2))
	finances.CreateElement("charges").SetText(d.Charges.StringFixed(2))
	finances.CreateElement("net_profit").SetText(d.NetProfit.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}
