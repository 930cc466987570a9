package services

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/moov-io/iso20022/pkg/common"
	"github.com/moov-io/iso20022/pkg/pacs_v08"
	"github.com/sunubank/demobank/internal/models"
)

const issuerBIC = "SUNUBANK"

// ISO20022Service renders recorded transfer transactions as ISO 20022
// messages: the instruction as pacs.008 and the outcome as pacs.002. Since
// the shipped outcome policy declines everything, exported status reports
// carry RJCT.
type ISO20022Service struct {
	transactions *TransactionService
	session      *SessionService
}

func NewISO20022Service(transactions *TransactionService, session *SessionService) *ISO20022Service {
	return &ISO20022Service{transactions: transactions, session: session}
}

// ExportTransaction converts a transaction export to ISO20022 XML
// @Summary Export transaction as pacs.008 + pacs.002
// @Tags iso20022
// @Produce json
// @Param txId path string true "Transaction ID"
// @Success 200 {object} object{messageType=string,instruction=string,statusReport=string}
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{txId}/iso20022 [get]
func (iso *ISO20022Service) ExportTransaction(w http.ResponseWriter, r *http.Request) {
	txID := chi.URLParam(r, "txId")
	tx, ok := iso.transactions.Get(r.Context(), txID)
	if !ok {
		SendErrorResponse(w, "Transaction not found", http.StatusNotFound, nil)
		return
	}

	debtor := iso.session.CurrentUser(r.Context()).Name

	pacs008, err := iso.CreatePacs008(&tx, debtor)
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}
	instruction, err := iso.ConvertToXML(pacs008)
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	pacs002, err := iso.CreatePacs002(&tx, statusCode(tx.Status))
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}
	statusReport, err := iso.ConvertToXML(pacs002)
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	SendJSON(w, http.StatusOK, map[string]string{
		"messageType":  "pacs.008.001.08",
		"instruction":  instruction,
		"statusReport": statusReport,
	})
}

// CreatePacs008 creates a pacs.008 FIToFICustomerCreditTransfer message for
// a recorded transfer.
func (iso *ISO20022Service) CreatePacs008(tx *models.Transaction, debtorName string) (*pacs_v08.FIToFICustomerCreditTransferV08, error) {
	msgId := uuid.New().String()
	creDtTm := time.Now()
	settlementDate := tx.Date

	doc := &pacs_v08.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs_v08.GroupHeader93{
			MsgId:   common.Max35Text(msgId),
			CreDtTm: common.ISODateTime(creDtTm),
			NbOfTxs: "1",
			TtlIntrBkSttlmAmt: &pacs_v08.ActiveCurrencyAndAmount{
				Ccy:   common.ActiveCurrencyCode(tx.Currency),
				Value: float64(tx.Amount),
			},
			IntrBkSttlmDt: (*common.ISODate)(&settlementDate),
			SttlmInf: pacs_v08.SettlementInstruction7{
				SttlmMtd: "CLRG",
			},
		},
		CdtTrfTxInf: []pacs_v08.CreditTransferTransaction39{
			{
				PmtId: pacs_v08.PaymentIdentification7{
					InstrId:    &[]common.Max35Text{common.Max35Text(tx.ID)}[0],
					EndToEndId: common.Max35Text(tx.ID),
					TxId:       &[]common.Max35Text{common.Max35Text(tx.ID)}[0],
				},
				IntrBkSttlmAmt: pacs_v08.ActiveCurrencyAndAmount{
					Ccy:   common.ActiveCurrencyCode(tx.Currency),
					Value: float64(tx.Amount),
				},
				IntrBkSttlmDt: (*common.ISODate)(&settlementDate),
				ChrgBr:        "SLEV",
				DbtrAgt: pacs_v08.BranchAndFinancialInstitutionIdentification6{
					FinInstnId: pacs_v08.FinancialInstitutionIdentification18{
						BICFI: &[]common.BICFIDec2014Identifier{common.BICFIDec2014Identifier(issuerBIC)}[0],
					},
				},
				Dbtr: pacs_v08.PartyIdentification135{
					Nm: &[]common.Max140Text{common.Max140Text(debtorName)}[0],
				},
				CdtrAgt: pacs_v08.BranchAndFinancialInstitutionIdentification6{
					FinInstnId: pacs_v08.FinancialInstitutionIdentification18{
						ClrSysMmbId: &pacs_v08.ClearingSystemMemberIdentification2{
							MmbId: common.Max35Text("EXTERNAL"),
						},
					},
				},
				Cdtr: pacs_v08.PartyIdentification135{
					Nm: &[]common.Max140Text{common.Max140Text(tx.Recipient)}[0],
				},
			},
		},
	}

	return doc, nil
}

// CreatePacs002 creates a pacs.002 payment status report for a recorded
// transfer.
func (iso *ISO20022Service) CreatePacs002(tx *models.Transaction, status string) (*pacs_v08.FIToFIPaymentStatusReportV08, error) {
	msgId := uuid.New().String()
	creDtTm := time.Now()

	doc := &pacs_v08.FIToFIPaymentStatusReportV08{
		GrpHdr: pacs_v08.GroupHeader53{
			MsgId:   common.Max35Text(msgId),
			CreDtTm: common.ISODateTime(creDtTm),
		},
		TxInfAndSts: []pacs_v08.PaymentTransaction80{
			{
				OrgnlInstrId:    &[]common.Max35Text{common.Max35Text(tx.ID)}[0],
				OrgnlEndToEndId: &[]common.Max35Text{common.Max35Text(tx.ID)}[0],
				OrgnlTxId:       &[]common.Max35Text{common.Max35Text(tx.ID)}[0],
				TxSts:           &[]pacs_v08.ExternalPaymentTransactionStatus1Code{pacs_v08.ExternalPaymentTransactionStatus1Code(status)}[0],
			},
		},
	}

	return doc, nil
}

// ConvertToXML converts an ISO 20022 document to an XML string.
func (iso *ISO20022Service) ConvertToXML(doc any) (string, error) {
	xmlData, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal XML: %w", err)
	}
	return xml.Header + string(xmlData), nil
}

func statusCode(txStatus string) string {
	switch txStatus {
	case models.TxStatusFailed:
		return "RJCT"
	case models.TxStatusCompleted:
		return "ACSC"
	default:
		return "ACCP"
	}
}
