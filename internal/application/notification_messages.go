package application

import (
	"fmt"

	"github.com/yemenhybrid/workshop-go/internal/domain/user"
)

// localizedMessage carries both renderings of a notification; the
// recipient's stored language picks one at creation time.
type localizedMessage struct {
	TitleEn   string
	TitleAr   string
	MessageEn string
	MessageAr string
}

func (m localizedMessage) For(lang user.Language) (title, message string) {
	if lang == user.LanguageArabic {
		return m.TitleAr, m.MessageAr
	}
	return m.TitleEn, m.MessageEn
}

func shortOrderID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func workOrderAssignedMessage(orderID string) localizedMessage {
	shortID := shortOrderID(orderID)
	return localizedMessage{
		TitleEn:   "New Work Order Assigned",
		TitleAr:   "تم تعيين أمر عمل جديد",
		MessageEn: fmt.Sprintf("You have been assigned work order #%s", shortID),
		MessageAr: fmt.Sprintf("تم تعيينك لأمر العمل #%s", shortID),
	}
}

func workOrderStartedMessage(orderID string) localizedMessage {
	shortID := shortOrderID(orderID)
	return localizedMessage{
		TitleEn:   "Work Order Started",
		TitleAr:   "بدأ تنفيذ أمر العمل",
		MessageEn: fmt.Sprintf("Work order #%s is now in progress", shortID),
		MessageAr: fmt.Sprintf("أمر العمل #%s قيد التنفيذ الآن", shortID),
	}
}

func workOrderCompletedMessage(orderID string) localizedMessage {
	shortID := shortOrderID(orderID)
	return localizedMessage{
		TitleEn:   "Work Order Completed",
		TitleAr:   "اكتمل أمر العمل",
		MessageEn: fmt.Sprintf("Work order #%s has been completed and is ready for review", shortID),
		MessageAr: fmt.Sprintf("تم إكمال أمر العمل #%s وهو جاهز للمراجعة", shortID),
	}
}

func workOrderDeliveredMessage(orderID string) localizedMessage {
	shortID := shortOrderID(orderID)
	return localizedMessage{
		TitleEn:   "Order Delivered",
		TitleAr:   "تم تسليم الطلب",
		MessageEn: fmt.Sprintf("Your work order #%s has been delivered. Thank you for your business!", shortID),
		MessageAr: fmt.Sprintf("تم تسليم أمر العمل الخاص بك #%s. شكراً لتعاملكم معنا!", shortID),
	}
}
